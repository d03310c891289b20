package seeder

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/services/scoring"
	"Backend-FormBuilder/src/utils"
)

type fakeForms struct {
	existing  []models.FormSummary
	created   []models.CreateFormRequest
	published []string
}

func (f *fakeForms) List(context.Context) ([]models.FormSummary, error) { return f.existing, nil }

func (f *fakeForms) Create(_ context.Context, req models.CreateFormRequest) (*models.Form, error) {
	f.created = append(f.created, req)
	return &models.Form{ID: primitive.NewObjectID(), Title: req.Title}, nil
}

func (f *fakeForms) Publish(_ context.Context, id string, _ bool) (*models.Form, error) {
	f.published = append(f.published, id)
	return &models.Form{}, nil
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestSeedSampleForms(t *testing.T) {
	f := &fakeForms{}
	require.NoError(t, SeedSampleForms(context.Background(), f, quietLog()))
	assert.Len(t, f.created, len(SampleForms()))
	assert.Len(t, f.published, len(SampleForms()))
}

func TestSeedSkipsExisting(t *testing.T) {
	f := &fakeForms{existing: []models.FormSummary{{Title: "General Knowledge Quiz"}}}
	require.NoError(t, SeedSampleForms(context.Background(), f, quietLog()))
	assert.Empty(t, f.created)
}

func TestSampleFormsAreValidAndScorable(t *testing.T) {
	for _, req := range SampleForms() {
		require.NoError(t, utils.Validator().Struct(req), req.Title)

		var answers []models.Answer
		for i := range req.Questions {
			q := &req.Questions[i]
			q.ID = primitive.NewObjectID().Hex()
			a := models.Answer{QuestionID: q.ID, QuestionType: q.Type}
			for _, it := range q.Items {
				a.CategorizedItems = append(a.CategorizedItems, models.CategorizedItem{ItemID: it.ID, CategoryID: it.CorrectCategory})
			}
			for _, b := range q.Blanks {
				a.BlankAnswers = append(a.BlankAnswers, models.BlankAnswer{BlankID: b.ID, Answer: b.CorrectAnswer})
			}
			for _, sq := range q.SubQuestions {
				a.SubAnswers = append(a.SubAnswers, models.SubAnswer{SubQuestionID: sq.ID, Answer: sq.CorrectAnswer})
			}
			answers = append(answers, a)
		}

		score, maxScore := scoring.Score(answers, req.Questions)
		assert.Equal(t, len(req.Questions), maxScore)
		assert.Equal(t, maxScore, score)
	}
}
