package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Response ---
// Response is one submission. Score and MaxScore are computed once, against
// the form as it was at submission time, and never recomputed.
type Response struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FormID         primitive.ObjectID `bson:"formId" json:"formId"`
	FormSlug       string             `bson:"formSlug" json:"formSlug"`
	Answers        []Answer           `bson:"answers" json:"answers"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
	SubmitterInfo  SubmitterInfo      `bson:"submitterInfo" json:"submitterInfo"`
	Score          int                `bson:"score" json:"score"`
	MaxScore       int                `bson:"maxScore" json:"maxScore"`
	CompletionTime float64            `bson:"completionTime" json:"completionTime"` // seconds
	IsComplete     bool               `bson:"isComplete" json:"isComplete"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SubmitterInfo is opaque request metadata.
type SubmitterInfo struct {
	UserAgent string `bson:"userAgent" json:"userAgent"`
	IPAddress string `bson:"ipAddress" json:"ipAddress"`
	SessionID string `bson:"sessionId" json:"sessionId"`
}
