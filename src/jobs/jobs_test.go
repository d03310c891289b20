package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) DeleteByFormID(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObservePurge(n int64) { m.Called(n) }

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestNewPurgeResponsesTask(t *testing.T) {
	task, err := NewPurgeResponsesTask("abc")
	require.NoError(t, err)
	assert.Equal(t, TypePurgeResponses, task.Type())

	var p PurgeResponsesPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "abc", p.FormID)
}

func TestQueuePurger(t *testing.T) {
	formID := primitive.NewObjectID()

	t.Run("Enqueues", func(t *testing.T) {
		q := new(MockEnqueuer)
		q.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
			return task.Type() == TypePurgeResponses
		}), mock.Anything).Return(&asynq.TaskInfo{ID: "purge-responses-" + formID.Hex(), Queue: "default"}, nil)

		require.NoError(t, NewQueuePurger(q, quietLog()).PurgeResponses(context.Background(), formID))
		q.AssertExpectations(t)
	})

	t.Run("AlreadyQueued", func(t *testing.T) {
		q := new(MockEnqueuer)
		q.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).Return(nil, asynq.ErrTaskIDConflict)

		assert.NoError(t, NewQueuePurger(q, quietLog()).PurgeResponses(context.Background(), formID))
	})

	t.Run("RedisDown", func(t *testing.T) {
		q := new(MockEnqueuer)
		q.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused"))

		assert.Error(t, NewQueuePurger(q, quietLog()).PurgeResponses(context.Background(), formID))
	})
}

func TestInlinePurger(t *testing.T) {
	formID := primitive.NewObjectID()
	d := new(MockDeleter)
	r := new(MockRecorder)
	d.On("DeleteByFormID", mock.Anything, formID).Return(int64(3), nil)
	r.On("ObservePurge", int64(3)).Return()

	require.NoError(t, NewInlinePurger(d, r, quietLog()).PurgeResponses(context.Background(), formID))
	d.AssertExpectations(t)
	r.AssertExpectations(t)
}

func TestPurgeHandler(t *testing.T) {
	formID := primitive.NewObjectID()

	t.Run("DeletesResponses", func(t *testing.T) {
		d := new(MockDeleter)
		d.On("DeleteByFormID", mock.Anything, formID).Return(int64(2), nil)
		task, _ := NewPurgeResponsesTask(formID.Hex())

		require.NoError(t, NewPurgeHandler(d, nil, quietLog()).ProcessTask(context.Background(), task))
		d.AssertExpectations(t)
	})

	t.Run("BadPayloadSkipsRetry", func(t *testing.T) {
		d := new(MockDeleter)
		err := NewPurgeHandler(d, nil, quietLog()).ProcessTask(context.Background(), asynq.NewTask(TypePurgeResponses, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		d.AssertNotCalled(t, "DeleteByFormID", mock.Anything, mock.Anything)
	})

	t.Run("BadFormIDSkipsRetry", func(t *testing.T) {
		d := new(MockDeleter)
		task, _ := NewPurgeResponsesTask("not-hex")
		err := NewPurgeHandler(d, nil, quietLog()).ProcessTask(context.Background(), task)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("StoreErrorIsRetried", func(t *testing.T) {
		d := new(MockDeleter)
		d.On("DeleteByFormID", mock.Anything, formID).Return(int64(0), errors.New("timeout"))
		task, _ := NewPurgeResponsesTask(formID.Hex())

		err := NewPurgeHandler(d, nil, quietLog()).ProcessTask(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestServeMuxRoutesPurge(t *testing.T) {
	formID := primitive.NewObjectID()
	d := new(MockDeleter)
	d.On("DeleteByFormID", mock.Anything, formID).Return(int64(0), nil)
	mux := NewServeMux(NewPurgeHandler(d, nil, quietLog()))

	task, _ := NewPurgeResponsesTask(formID.Hex())
	require.NoError(t, mux.ProcessTask(context.Background(), task))
	d.AssertExpectations(t)
}
