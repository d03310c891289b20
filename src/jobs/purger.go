package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const purgeMaxRetry = 5

// ResponseDeleter removes every response of a form.
type ResponseDeleter interface {
	DeleteByFormID(ctx context.Context, formID primitive.ObjectID) (int64, error)
}

// PurgeRecorder observes how many responses a purge removed.
type PurgeRecorder interface {
	ObservePurge(n int64)
}

// Enqueuer is the part of *asynq.Client the queue purger needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePurger hands response purges to the background worker.
type QueuePurger struct {
	client Enqueuer
	log    *logrus.Entry
}

func NewQueuePurger(client Enqueuer, log *logrus.Entry) *QueuePurger {
	return &QueuePurger{client: client, log: log.WithField("component", "purge_queue")}
}

func (p *QueuePurger) PurgeResponses(ctx context.Context, formID primitive.ObjectID) error {
	task, err := NewPurgeResponsesTask(formID.Hex())
	if err != nil {
		return err
	}
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.TaskID("purge-responses-"+formID.Hex()),
		asynq.MaxRetry(purgeMaxRetry),
	)
	if err != nil {
		// A purge for this form is already queued.
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue purge: %w", err)
	}
	p.log.WithFields(logrus.Fields{"form_id": formID.Hex(), "task_id": info.ID, "queue": info.Queue}).Info("purge enqueued")
	return nil
}

// InlinePurger deletes responses in the calling goroutine. It is used when no
// Redis is configured.
type InlinePurger struct {
	deleter  ResponseDeleter
	recorder PurgeRecorder
	log      *logrus.Entry
}

func NewInlinePurger(deleter ResponseDeleter, recorder PurgeRecorder, log *logrus.Entry) *InlinePurger {
	return &InlinePurger{deleter: deleter, recorder: recorder, log: log.WithField("component", "purge_inline")}
}

func (p *InlinePurger) PurgeResponses(ctx context.Context, formID primitive.ObjectID) error {
	return purge(ctx, p.deleter, p.recorder, p.log, formID)
}

func purge(ctx context.Context, deleter ResponseDeleter, recorder PurgeRecorder, log *logrus.Entry, formID primitive.ObjectID) error {
	n, err := deleter.DeleteByFormID(ctx, formID)
	if err != nil {
		return err
	}
	if recorder != nil {
		recorder.ObservePurge(n)
	}
	log.WithFields(logrus.Fields{"form_id": formID.Hex(), "deleted": n}).Info("responses purged")
	return nil
}
