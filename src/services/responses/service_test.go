package responses

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormBuilder/src/models"
)

type MockFormSource struct {
	mock.Mock
}

func (m *MockFormSource) FindPublishedBySlug(ctx context.Context, slug string) (*models.Form, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveSubmission(score, maxScore int) {
	m.Called(score, maxScore)
}

// memStore keeps responses in insertion order.
type memStore struct {
	items     []models.Response
	insertErr error
}

func (s *memStore) Insert(_ context.Context, resp *models.Response) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	resp.ID = primitive.NewObjectID()
	s.items = append(s.items, *resp)
	return nil
}

func (s *memStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Response, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			r := s.items[i]
			return &r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memStore) ListByFormID(_ context.Context, formID primitive.ObjectID) ([]models.Response, error) {
	out := []models.Response{}
	for _, r := range s.items {
		if r.FormID == formID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) ListBySlug(_ context.Context, slug string) ([]models.Response, error) {
	out := []models.Response{}
	for _, r := range s.items {
		if r.FormSlug == slug {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func quizForm() *models.Form {
	return &models.Form{
		ID:          primitive.NewObjectID(),
		Slug:        "quiz-1",
		IsPublished: true,
		Questions: []models.Question{
			{
				ID: "q1", Type: models.Cloze, Title: "Capital",
				Blanks: []models.Blank{{ID: "b1", CorrectAnswer: "Paris"}},
			},
			{
				ID: "q2", Type: models.Comprehension, Title: "Passage",
				SubQuestions: []models.SubQuestion{{ID: "s1", Type: models.TrueFalse, CorrectAnswer: "true"}},
			},
		},
		Settings: models.FormSettings{ThankYouMessage: "Cheers"},
	}
}

func answers(blank, sub string) []models.Answer {
	return []models.Answer{
		{QuestionID: "q1", QuestionType: models.Cloze, BlankAnswers: []models.BlankAnswer{{BlankID: "b1", Answer: blank}}},
		{QuestionID: "q2", QuestionType: models.Comprehension, SubAnswers: []models.SubAnswer{{SubQuestionID: "s1", Answer: sub}}},
	}
}

type fixture struct {
	store    *memStore
	forms    *MockFormSource
	recorder *MockRecorder
	svc      *Service
}

func newFixture() *fixture {
	l := logrus.New()
	l.SetOutput(io.Discard)
	f := &fixture{store: &memStore{}, forms: new(MockFormSource), recorder: new(MockRecorder)}
	f.svc = NewService(f.store, f.forms, f.recorder, logrus.NewEntry(l))
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestSubmit(t *testing.T) {
	f := newFixture()
	form := quizForm()
	f.forms.On("FindPublishedBySlug", mock.Anything, "quiz-1").Return(form, nil)
	f.recorder.On("ObserveSubmission", 1, 2).Return()

	res, err := f.svc.Submit(context.Background(), models.SubmitResponseRequest{
		FormSlug:       "quiz-1",
		Answers:        answers("paris", "false"),
		CompletionTime: 42.5,
		SessionID:      "sess-1",
	}, models.SubmitterInfo{UserAgent: "test-agent", IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, SubmittedMessage, res.Message)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 2, res.MaxScore)
	assert.Equal(t, "Cheers", res.ThankYouMessage)

	require.Len(t, f.store.items, 1)
	stored := f.store.items[0]
	assert.Equal(t, res.ResponseID, stored.ID)
	assert.Equal(t, form.ID, stored.FormID)
	assert.Equal(t, fixedNow, stored.SubmittedAt)
	assert.True(t, stored.IsComplete)
	assert.Equal(t, 42.5, stored.CompletionTime)
	assert.Equal(t, models.SubmitterInfo{UserAgent: "test-agent", IPAddress: "10.0.0.1", SessionID: "sess-1"}, stored.SubmitterInfo)
	f.recorder.AssertExpectations(t)
}

func TestSubmitDefaultThankYou(t *testing.T) {
	f := newFixture()
	form := quizForm()
	form.Settings.ThankYouMessage = ""
	f.forms.On("FindPublishedBySlug", mock.Anything, "quiz-1").Return(form, nil)
	f.recorder.On("ObserveSubmission", mock.Anything, mock.Anything).Return()

	res, err := f.svc.Submit(context.Background(), models.SubmitResponseRequest{FormSlug: "quiz-1", Answers: []models.Answer{}}, models.SubmitterInfo{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultThankYouMessage, res.ThankYouMessage)
	assert.Equal(t, 0, res.MaxScore)
}

func TestSubmitUnknownSlugStoresNothing(t *testing.T) {
	f := newFixture()
	f.forms.On("FindPublishedBySlug", mock.Anything, "missing").Return(nil, models.ErrNotFound)

	_, err := f.svc.Submit(context.Background(), models.SubmitResponseRequest{FormSlug: "missing", Answers: answers("Paris", "true")}, models.SubmitterInfo{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, f.store.items)
	f.recorder.AssertNotCalled(t, "ObserveSubmission", mock.Anything, mock.Anything)
}

func TestSubmitStoreFailure(t *testing.T) {
	f := newFixture()
	f.store.insertErr = errors.New("write failed")
	f.forms.On("FindPublishedBySlug", mock.Anything, "quiz-1").Return(quizForm(), nil)

	_, err := f.svc.Submit(context.Background(), models.SubmitResponseRequest{FormSlug: "quiz-1", Answers: answers("Paris", "true")}, models.SubmitterInfo{})
	assert.EqualError(t, err, "write failed")
	f.recorder.AssertNotCalled(t, "ObserveSubmission", mock.Anything, mock.Anything)
}

func TestNilRecorder(t *testing.T) {
	f := newFixture()
	f.svc.recorder = nil
	f.forms.On("FindPublishedBySlug", mock.Anything, "quiz-1").Return(quizForm(), nil)

	res, err := f.svc.Submit(context.Background(), models.SubmitResponseRequest{FormSlug: "quiz-1", Answers: answers("Paris", "true")}, models.SubmitterInfo{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
}

func TestAnalyticsFollowsStoredResponses(t *testing.T) {
	f := newFixture()
	form := quizForm()
	f.forms.On("FindPublishedBySlug", mock.Anything, "quiz-1").Return(form, nil)
	f.recorder.On("ObserveSubmission", mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	full, err := f.svc.Submit(ctx, models.SubmitResponseRequest{FormSlug: "quiz-1", Answers: answers("Paris", "TRUE"), CompletionTime: 30}, models.SubmitterInfo{})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, models.SubmitResponseRequest{FormSlug: "quiz-1", Answers: answers("London", "false"), CompletionTime: 60}, models.SubmitterInfo{})
	require.NoError(t, err)

	got, err := f.svc.Analytics(ctx, form.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalResponses)
	assert.InDelta(t, 50.0, got.AverageScore, 1e-9)
	assert.InDelta(t, 45.0, got.AverageCompletionTime, 1e-9)
	assert.Equal(t, map[string]int{"2024-03-15": 2}, got.ResponsesByDay)
	assert.Equal(t, models.ScoreDistribution{Excellent: 1, Poor: 1}, got.ScoreDistribution)

	require.NoError(t, f.svc.Delete(ctx, full.ResponseID.Hex()))

	got, err = f.svc.Analytics(ctx, form.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalResponses)
	assert.InDelta(t, 0.0, got.AverageScore, 1e-9)
	assert.Equal(t, models.ScoreDistribution{Poor: 1}, got.ScoreDistribution)
}

func TestAnalyticsNoResponses(t *testing.T) {
	f := newFixture()
	got, err := f.svc.Analytics(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalResponses)
	assert.NotNil(t, got.ResponsesByDay)
	assert.Empty(t, got.ResponsesByDay)
}

func TestGetAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	resp := &models.Response{FormSlug: "quiz-1"}
	require.NoError(t, f.store.Insert(ctx, resp))

	got, err := f.svc.Get(ctx, resp.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "quiz-1", got.FormSlug)

	require.NoError(t, f.svc.Delete(ctx, resp.ID.Hex()))
	_, err = f.svc.Get(ctx, resp.ID.Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, resp.ID.Hex()), models.ErrNotFound)
}

func TestInvalidIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "xyz")
	assert.ErrorIs(t, err, models.ErrInvalidID)
	_, err = f.svc.ListByForm(ctx, "xyz")
	assert.ErrorIs(t, err, models.ErrInvalidID)
	_, err = f.svc.Analytics(ctx, "xyz")
	assert.ErrorIs(t, err, models.ErrInvalidID)
	assert.ErrorIs(t, f.svc.Delete(ctx, "xyz"), models.ErrInvalidID)
}

func TestListBySlug(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.NoError(t, f.store.Insert(ctx, &models.Response{FormSlug: "a"}))
	require.NoError(t, f.store.Insert(ctx, &models.Response{FormSlug: "b"}))

	list, err := f.svc.ListBySlug(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
