package responses

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/services/analytics"
	"Backend-FormBuilder/src/services/scoring"
)

const SubmittedMessage = "Response submitted successfully"

// Store persists responses.
type Store interface {
	Insert(ctx context.Context, resp *models.Response) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error)
	ListByFormID(ctx context.Context, formID primitive.ObjectID) ([]models.Response, error)
	ListBySlug(ctx context.Context, slug string) ([]models.Response, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FormSource resolves the published form a submission is scored against.
// It must read the current stored form, not a cached copy.
type FormSource interface {
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Form, error)
}

// Recorder observes accepted submissions.
type Recorder interface {
	ObserveSubmission(score, maxScore int)
}

type Service struct {
	store    Store
	forms    FormSource
	recorder Recorder
	log      *logrus.Entry
	now      func() time.Time
}

// NewService wires the response service. recorder may be nil.
func NewService(store Store, forms FormSource, recorder Recorder, log *logrus.Entry) *Service {
	return &Service{
		store:    store,
		forms:    forms,
		recorder: recorder,
		log:      log.WithField("component", "responses"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit scores the answers against the published form named by req.FormSlug
// and stores the result. When no published form matches, nothing is scored
// or stored and models.ErrNotFound is returned.
func (s *Service) Submit(ctx context.Context, req models.SubmitResponseRequest, info models.SubmitterInfo) (*models.SubmitResult, error) {
	form, err := s.forms.FindPublishedBySlug(ctx, req.FormSlug)
	if err != nil {
		return nil, err
	}

	score, maxScore := scoring.Score(req.Answers, form.Questions)

	now := s.now()
	if info.SessionID == "" {
		info.SessionID = req.SessionID
	}
	resp := &models.Response{
		FormID:         form.ID,
		FormSlug:       req.FormSlug,
		Answers:        req.Answers,
		SubmittedAt:    now,
		SubmitterInfo:  info,
		Score:          score,
		MaxScore:       maxScore,
		CompletionTime: req.CompletionTime,
		IsComplete:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Insert(ctx, resp); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.ObserveSubmission(score, maxScore)
	}
	s.log.WithFields(logrus.Fields{
		"response_id": resp.ID.Hex(),
		"slug":        req.FormSlug,
		"score":       score,
		"max_score":   maxScore,
	}).Info("response submitted")

	return &models.SubmitResult{
		Message:         SubmittedMessage,
		ResponseID:      resp.ID,
		Score:           score,
		MaxScore:        maxScore,
		ThankYouMessage: form.ThankYou(),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Response, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, oid)
}

// ListByForm returns the responses of a form, newest first.
func (s *Service) ListByForm(ctx context.Context, formID string) ([]models.Response, error) {
	oid, err := parseID(formID)
	if err != nil {
		return nil, err
	}
	return s.store.ListByFormID(ctx, oid)
}

func (s *Service) ListBySlug(ctx context.Context, slug string) ([]models.Response, error) {
	return s.store.ListBySlug(ctx, slug)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		return err
	}
	s.log.WithField("response_id", id).Info("response deleted")
	return nil
}

// Analytics recomputes the summary of a form from its stored responses.
func (s *Service) Analytics(ctx context.Context, formID string) (models.FormAnalytics, error) {
	oid, err := parseID(formID)
	if err != nil {
		return models.FormAnalytics{}, err
	}
	list, err := s.store.ListByFormID(ctx, oid)
	if err != nil {
		return models.FormAnalytics{}, err
	}
	return analytics.Aggregate(list), nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return oid, nil
}
