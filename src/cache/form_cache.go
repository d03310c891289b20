package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"Backend-FormBuilder/src/models"
)

const (
	keyPrefix        = "form:slug:"
	generationPrefix = "form:gen:"

	// generationTTL outlives any cache fill in flight.
	generationTTL = 24 * time.Hour
)

var errStaleGeneration = errors.New("cache generation moved")

// FormCache keeps published forms in Redis, keyed by slug. A nil client
// turns every call into a miss.
//
// Every slug has a generation counter that Invalidate bumps. A fill only
// lands when the generation it read before loading the form is still
// current, so a form changed mid-fill is never written back.
type FormCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logrus.Entry
}

func NewFormCache(rdb *redis.Client, ttl time.Duration, log *logrus.Entry) *FormCache {
	return &FormCache{rdb: rdb, ttl: ttl, log: log.WithField("component", "form_cache")}
}

func Key(slug string) string { return keyPrefix + slug }

func GenerationKey(slug string) string { return generationPrefix + slug }

func (c *FormCache) Get(ctx context.Context, slug string) (*models.Form, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, Key(slug)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).WithField("slug", slug).Warn("cache read failed")
		}
		return nil, false
	}
	var form models.Form
	if err := json.Unmarshal(raw, &form); err != nil {
		c.log.WithError(err).WithField("slug", slug).Warn("dropping undecodable cache entry")
		c.Invalidate(ctx, slug)
		return nil, false
	}
	return &form, true
}

// Generation reads the current generation of slug. ok is false when Redis
// cannot be read, in which case the caller should not fill the cache.
func (c *FormCache) Generation(ctx context.Context, slug string) (gen int64, ok bool) {
	if c.rdb == nil {
		return 0, false
	}
	gen, err := c.rdb.Get(ctx, GenerationKey(slug)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WithError(err).WithField("slug", slug).Warn("cache generation read failed")
		return 0, false
	}
	return gen, true
}

// SetIfCurrent stores a published form unless its slug was invalidated
// since gen was read.
func (c *FormCache) SetIfCurrent(ctx context.Context, form *models.Form, gen int64) {
	if c.rdb == nil || form == nil || !form.IsPublished {
		return
	}
	raw, err := json.Marshal(form)
	if err != nil {
		c.log.WithError(err).Warn("cache encode failed")
		return
	}

	genKey := GenerationKey(form.Slug)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(form.Slug), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.log.WithField("slug", form.Slug).Debug("skipping cache write for changed form")
	default:
		c.log.WithError(err).WithField("slug", form.Slug).Warn("cache write failed")
	}
}

// Invalidate drops the cached form and bumps the slug's generation.
func (c *FormCache) Invalidate(ctx context.Context, slug string) {
	if c.rdb == nil || slug == "" {
		return
	}
	genKey := GenerationKey(slug)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, Key(slug))
		return nil
	})
	if err != nil {
		c.log.WithError(err).WithField("slug", slug).Warn("cache invalidate failed")
	}
}
