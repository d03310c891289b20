package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurgeHandler runs queued response purges.
type PurgeHandler struct {
	deleter  ResponseDeleter
	recorder PurgeRecorder
	log      *logrus.Entry
}

func NewPurgeHandler(deleter ResponseDeleter, recorder PurgeRecorder, log *logrus.Entry) *PurgeHandler {
	return &PurgeHandler{deleter: deleter, recorder: recorder, log: log.WithField("component", "purge_worker")}
}

// ProcessTask implements asynq.Handler. Malformed payloads are not retried.
func (h *PurgeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload PurgeResponsesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.log.WithError(err).Error("payload decode error")
		return fmt.Errorf("decode purge payload: %v: %w", err, asynq.SkipRetry)
	}
	formID, err := primitive.ObjectIDFromHex(payload.FormID)
	if err != nil {
		h.log.WithField("form_id", payload.FormID).Error("invalid form id in purge task")
		return fmt.Errorf("purge form %q: %v: %w", payload.FormID, err, asynq.SkipRetry)
	}
	if err := purge(ctx, h.deleter, h.recorder, h.log, formID); err != nil {
		h.log.WithError(err).WithField("form_id", payload.FormID).Error("failed to purge responses")
		return err
	}
	return nil
}

// NewServeMux routes every task type this service produces.
func NewServeMux(purge *PurgeHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypePurgeResponses, purge)
	return mux
}

// NewServer builds the background worker on redisAddr.
func NewServer(redisAddr string, log *logrus.Entry) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 5,
			Logger:      log.WithField("component", "asynq"),
		},
	)
}
