package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreateFormRequest is the body of POST /api/forms.
type CreateFormRequest struct {
	Title       string         `json:"title" validate:"required,notblank"`
	Description string         `json:"description"`
	HeaderImage string         `json:"headerImage" validate:"omitempty,http_url"`
	Questions   []Question     `json:"questions" validate:"dive"`
	Settings    *SettingsPatch `json:"settings"`
	CreatedBy   string         `json:"createdBy"`
}

// UpdateFormRequest is the body of PUT /api/forms/:id. Nil fields are left as
// they are.
type UpdateFormRequest struct {
	Title       *string        `json:"title" validate:"omitempty,notblank"`
	Description *string        `json:"description"`
	HeaderImage *string        `json:"headerImage" validate:"omitempty,http_url|len=0"`
	Questions   *[]Question    `json:"questions" validate:"omitempty,dive"`
	Settings    *SettingsPatch `json:"settings"`
	IsPublished *bool          `json:"isPublished"`
	CreatedBy   *string        `json:"createdBy"`
}

// PublishRequest is the body of POST /api/forms/:id/publish.
type PublishRequest struct {
	IsPublished *bool `json:"isPublished" validate:"required"`
}

// SubmitResponseRequest is the body of POST /api/responses.
type SubmitResponseRequest struct {
	FormSlug       string   `json:"formSlug" validate:"required,notblank"`
	Answers        []Answer `json:"answers" validate:"required"`
	CompletionTime float64  `json:"completionTime" validate:"gte=0"`
	SessionID      string   `json:"sessionId"`
}

// SubmitResult is returned to the respondent after a submission.
type SubmitResult struct {
	Message         string             `json:"message"`
	ResponseID      primitive.ObjectID `json:"responseId"`
	Score           int                `json:"score"`
	MaxScore        int                `json:"maxScore"`
	ThankYouMessage string             `json:"thankYouMessage"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// PublishResult is returned by the publish endpoint.
type PublishResult struct {
	Message string `json:"message"`
	Form    *Form  `json:"form"`
}
