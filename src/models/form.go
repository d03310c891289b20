package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultThankYouMessage = "Thank you for your submission!"
	DefaultCreatedBy       = "anonymous"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	HeaderImage string             `bson:"headerImage" json:"headerImage"`
	Questions   []Question         `bson:"questions" json:"questions"`
	Settings    FormSettings       `bson:"settings" json:"settings"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	Slug        string             `bson:"slug" json:"slug"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// --- FormSettings ---
type FormSettings struct {
	AllowMultipleSubmissions bool   `bson:"allowMultipleSubmissions" json:"allowMultipleSubmissions"`
	ShowProgressBar          bool   `bson:"showProgressBar" json:"showProgressBar"`
	ThankYouMessage          string `bson:"thankYouMessage" json:"thankYouMessage"`
	RedirectURL              string `bson:"redirectUrl" json:"redirectUrl"`
}

// DefaultFormSettings returns the settings a new form starts with.
func DefaultFormSettings() FormSettings {
	return FormSettings{
		AllowMultipleSubmissions: false,
		ShowProgressBar:          true,
		ThankYouMessage:          DefaultThankYouMessage,
		RedirectURL:              "",
	}
}

// SettingsPatch carries the settings fields a caller sent. Absent fields are
// nil and keep their current value.
type SettingsPatch struct {
	AllowMultipleSubmissions *bool   `json:"allowMultipleSubmissions"`
	ShowProgressBar          *bool   `json:"showProgressBar"`
	ThankYouMessage          *string `json:"thankYouMessage"`
	RedirectURL              *string `json:"redirectUrl"`
}

// Apply overlays the sent fields on base.
func (p *SettingsPatch) Apply(base FormSettings) FormSettings {
	if p == nil {
		return base
	}
	if p.AllowMultipleSubmissions != nil {
		base.AllowMultipleSubmissions = *p.AllowMultipleSubmissions
	}
	if p.ShowProgressBar != nil {
		base.ShowProgressBar = *p.ShowProgressBar
	}
	if p.ThankYouMessage != nil {
		base.ThankYouMessage = *p.ThankYouMessage
	}
	if p.RedirectURL != nil {
		base.RedirectURL = *p.RedirectURL
	}
	return base
}

// ThankYou returns the configured message, falling back to the default.
func (f *Form) ThankYou() string {
	if f.Settings.ThankYouMessage == "" {
		return DefaultThankYouMessage
	}
	return f.Settings.ThankYouMessage
}

// FormSummary is the dashboard list view of a form.
type FormSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	HeaderImage   string             `bson:"headerImage" json:"headerImage"`
	IsPublished   bool               `bson:"isPublished" json:"isPublished"`
	Slug          string             `bson:"slug" json:"slug"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	ResponseCount int64              `bson:"-" json:"responseCount"`
}
