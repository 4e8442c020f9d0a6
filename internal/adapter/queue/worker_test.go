package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recharge-gateway/internal/core/ports"
	"recharge-gateway/internal/core/ports/mocks"
	"recharge-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSweeper struct {
	runs int
	err  error
}

func (f *fakeSweeper) Run(_ context.Context) (int, error) {
	f.runs++
	return 0, f.err
}

func newTestWorker(t *testing.T, notifier ports.CallbackNotifier, sweep sweeper) *Worker {
	t.Helper()
	w, err := NewWorker(asynq.RedisClientOpt{Addr: "127.0.0.1:0"}, notifier, sweep, time.Minute, zerolog.Nop())
	require.NoError(t, err)
	return w
}

func callbackTask(t *testing.T, orderID string, attempt int) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(ports.CallbackJob{OrderID: orderID, Attempt: attempt})
	require.NoError(t, err)
	return asynq.NewTask(ports.TaskCallbackRetry, payload)
}

func TestWorker_HandleCallbackRetry_DelegatesToNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockCallbackNotifier(ctrl)
	w := newTestWorker(t, notifier, &fakeSweeper{})

	orderID := uuid.New()
	notifier.EXPECT().Notify(gomock.Any(), orderID).Return(nil)

	err := w.handleCallbackRetry(context.Background(), callbackTask(t, orderID.String(), 2))
	assert.NoError(t, err)
}

func TestWorker_HandleCallbackRetry_ExhaustionIsFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockCallbackNotifier(ctrl)
	w := newTestWorker(t, notifier, &fakeSweeper{})

	orderID := uuid.New()
	notifier.EXPECT().Notify(gomock.Any(), orderID).Return(apperror.ErrCallbackExhausted(4))

	// CB_001 means the delivery state is already FAILED; the queue must not retry.
	err := w.handleCallbackRetry(context.Background(), callbackTask(t, orderID.String(), 4))
	assert.NoError(t, err)
}

func TestWorker_HandleCallbackRetry_TransientErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockCallbackNotifier(ctrl)
	w := newTestWorker(t, notifier, &fakeSweeper{})

	orderID := uuid.New()
	boom := errors.New("db unavailable")
	notifier.EXPECT().Notify(gomock.Any(), orderID).Return(boom)

	err := w.handleCallbackRetry(context.Background(), callbackTask(t, orderID.String(), 1))
	assert.Error(t, err)
}

func TestWorker_HandleCallbackRetry_MalformedPayloadDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockCallbackNotifier(ctrl)
	w := newTestWorker(t, notifier, &fakeSweeper{})

	err := w.handleCallbackRetry(context.Background(), asynq.NewTask(ports.TaskCallbackRetry, []byte("not json")))
	assert.NoError(t, err)

	err = w.handleCallbackRetry(context.Background(), callbackTask(t, "not-a-uuid", 1))
	assert.NoError(t, err)
}

func TestWorker_HandleSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockCallbackNotifier(ctrl)
	sweep := &fakeSweeper{}
	w := newTestWorker(t, notifier, sweep)

	err := w.handleSweep(context.Background(), asynq.NewTask(ports.TaskOrderSweep, nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, sweep.runs)
}
