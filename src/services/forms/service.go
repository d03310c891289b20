package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormBuilder/src/models"
)

// Store persists forms.
type Store interface {
	Insert(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Form, error)
	List(ctx context.Context) ([]models.FormSummary, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateFormRequest) (*models.Form, error)
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*models.Form, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

// ResponseCounter reports how many responses each form has.
type ResponseCounter interface {
	CountByFormIDs(ctx context.Context, formIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error)
}

// Purger removes the responses of a deleted form.
type Purger interface {
	PurgeResponses(ctx context.Context, formID primitive.ObjectID) error
}

// Cache holds published forms by slug. Misses and failures both report
// ok=false; the store stays the source of truth. A fill passes the
// generation read before the store load and is dropped if the slug was
// invalidated in between.
type Cache interface {
	Get(ctx context.Context, slug string) (*models.Form, bool)
	Generation(ctx context.Context, slug string) (int64, bool)
	SetIfCurrent(ctx context.Context, form *models.Form, gen int64)
	Invalidate(ctx context.Context, slug string)
}

type Service struct {
	store   Store
	counter ResponseCounter
	purger  Purger
	cache   Cache
	log     *logrus.Entry
	now     func() time.Time
}

// NewService wires the form service. cache may be nil.
func NewService(store Store, counter ResponseCounter, purger Purger, cache Cache, log *logrus.Entry) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		store:   store,
		counter: counter,
		purger:  purger,
		cache:   cache,
		log:     log.WithField("component", "forms"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error) {
	now := s.now()
	form := &models.Form{
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   normalizeQuestions(req.Questions),
		Settings:    req.Settings.Apply(models.DefaultFormSettings()),
		CreatedBy:   req.CreatedBy,
		Slug:        Slugify(req.Title, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if form.CreatedBy == "" {
		form.CreatedBy = models.DefaultCreatedBy
	}

	if err := s.store.Insert(ctx, form); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"form_id": form.ID.Hex(), "slug": form.Slug}).Info("form created")
	return form, nil
}

// List returns every form with its response count, newest first.
func (s *Service) List(ctx context.Context) ([]models.FormSummary, error) {
	forms, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(forms))
	for i, f := range forms {
		ids[i] = f.ID
	}
	counts, err := s.counter.CountByFormIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		forms[i].ResponseCount = counts[forms[i].ID]
	}
	return forms, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, oid)
}

// GetPublishedBySlug returns the published form for slug, or ErrNotFound when
// there is none. It reads through the cache.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*models.Form, error) {
	if form, ok := s.cache.Get(ctx, slug); ok {
		return form, nil
	}
	gen, cacheable := s.cache.Generation(ctx, slug)
	form, err := s.store.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.cache.SetIfCurrent(ctx, form, gen)
	}
	return form, nil
}

// FindPublishedBySlug reads the published form from the store, skipping the
// cache. Submissions are scored against it.
func (s *Service) FindPublishedBySlug(ctx context.Context, slug string) (*models.Form, error) {
	return s.store.FindPublishedBySlug(ctx, slug)
}

func (s *Service) Update(ctx context.Context, id string, req models.UpdateFormRequest) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if req.Questions != nil {
		qs := normalizeQuestions(*req.Questions)
		req.Questions = &qs
	}
	form, err := s.store.Update(ctx, oid, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, form.Slug)
	return form, nil
}

func (s *Service) Publish(ctx context.Context, id string, published bool) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	form, err := s.store.SetPublished(ctx, oid, published)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, form.Slug)
	s.log.WithFields(logrus.Fields{"form_id": id, "published": published}).Info("form publish state changed")
	return form, nil
}

// Delete removes the form and then its responses. The form is gone even if
// purging the responses fails; that error is still returned.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	form, err := s.store.Delete(ctx, oid)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, form.Slug)

	if err := s.purger.PurgeResponses(ctx, oid); err != nil {
		s.log.WithError(err).WithField("form_id", id).Error("failed to purge responses of deleted form")
		return fmt.Errorf("purge responses: %w", err)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return oid, nil
}

// IsNotFound reports whether err means the form does not exist or is not
// published.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// normalizeQuestions gives every question and sub-element without an id a
// fresh one, so answers can always refer to them.
func normalizeQuestions(in []models.Question) []models.Question {
	out := make([]models.Question, len(in))
	for i, q := range in {
		q.ID = orNewID(q.ID)
		q.Categories = append([]models.Category(nil), q.Categories...)
		for j := range q.Categories {
			q.Categories[j].ID = orNewID(q.Categories[j].ID)
		}
		q.Items = append([]models.CategorizeItem(nil), q.Items...)
		for j := range q.Items {
			q.Items[j].ID = orNewID(q.Items[j].ID)
		}
		q.Blanks = append([]models.Blank(nil), q.Blanks...)
		for j := range q.Blanks {
			q.Blanks[j].ID = orNewID(q.Blanks[j].ID)
		}
		q.SubQuestions = append([]models.SubQuestion(nil), q.SubQuestions...)
		for j := range q.SubQuestions {
			sq := &q.SubQuestions[j]
			sq.ID = orNewID(sq.ID)
			if sq.Type == "" {
				sq.Type = models.TextAnswer
			}
			if sq.Options == nil {
				sq.Options = []string{}
			}
		}
		out[i] = q
	}
	return out
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

type noCache struct{}

func (noCache) Get(context.Context, string) (*models.Form, bool)  { return nil, false }
func (noCache) Generation(context.Context, string) (int64, bool)  { return 0, false }
func (noCache) SetIfCurrent(context.Context, *models.Form, int64) {}
func (noCache) Invalidate(context.Context, string)                {}
