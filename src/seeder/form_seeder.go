package seeder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"Backend-FormBuilder/src/models"
)

// FormCreator is the part of the form service the seeder uses.
type FormCreator interface {
	List(ctx context.Context) ([]models.FormSummary, error)
	Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error)
	Publish(ctx context.Context, id string, published bool) (*models.Form, error)
}

// SeedSampleForms creates and publishes the sample forms that do not exist
// yet, matched by title.
func SeedSampleForms(ctx context.Context, svc FormCreator, log *logrus.Entry) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("list forms: %w", err)
	}
	titles := make(map[string]bool, len(existing))
	for _, f := range existing {
		titles[f.Title] = true
	}

	for _, req := range SampleForms() {
		if titles[req.Title] {
			continue
		}
		form, err := svc.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create %q: %w", req.Title, err)
		}
		if _, err := svc.Publish(ctx, form.ID.Hex(), true); err != nil {
			return fmt.Errorf("publish %q: %w", req.Title, err)
		}
		log.WithFields(logrus.Fields{"form_id": form.ID.Hex(), "slug": form.Slug}).Info("seeded sample form")
	}
	return nil
}

// SampleForms returns one quiz with a question of every type.
func SampleForms() []models.CreateFormRequest {
	return []models.CreateFormRequest{
		{
			Title:       "General Knowledge Quiz",
			Description: "A short quiz with one question of each type",
			CreatedBy:   "seeder",
			Questions: []models.Question{
				{
					Type:  models.Categorize,
					Title: "Sort the animals",
					Categories: []models.Category{
						{ID: "mammal", Name: "Mammal", Color: "#3B82F6"},
						{ID: "bird", Name: "Bird", Color: "#10B981"},
					},
					Items: []models.CategorizeItem{
						{ID: "dog", Text: "Dog", CorrectCategory: "mammal"},
						{ID: "eagle", Text: "Eagle", CorrectCategory: "bird"},
						{ID: "whale", Text: "Whale", CorrectCategory: "mammal"},
					},
				},
				{
					Type:     models.Cloze,
					Title:    "Fill in the capitals",
					Sentence: "The capital of France is _____ and the capital of Italy is _____.",
					Blanks: []models.Blank{
						{ID: "france", Position: 0, CorrectAnswer: "Paris"},
						{ID: "italy", Position: 1, CorrectAnswer: "Rome"},
					},
				},
				{
					Type:    models.Comprehension,
					Title:   "Read and answer",
					Passage: "Water boils at 100 degrees Celsius at sea level. At higher altitudes it boils at a lower temperature.",
					SubQuestions: []models.SubQuestion{
						{ID: "boil", Question: "At what temperature does water boil at sea level?", Type: models.MultipleChoice, Options: []string{"90", "100", "110"}, CorrectAnswer: "100"},
						{ID: "altitude", Question: "Water boils at a higher temperature on mountains.", Type: models.TrueFalse, Options: []string{"true", "false"}, CorrectAnswer: "false"},
						{ID: "opinion", Question: "What else would you like to learn about water?", Type: models.TextAnswer},
					},
				},
			},
		},
	}
}
