package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type sweeper interface {
	Run(ctx context.Context) (int, error)
}

// Worker consumes delayed tasks: merchant callback attempts and the periodic
// stale-order sweep. One process runs both the asynq server and the cron-style
// scheduler that emits sweep tasks.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	notifier  ports.CallbackNotifier
	sweep     sweeper
	log       zerolog.Logger
}

// NewWorker creates a Worker. sweepInterval controls how often the sweep task
// fires.
func NewWorker(redisOpt asynq.RedisClientOpt, notifier ports.CallbackNotifier, sweep sweeper, sweepInterval time.Duration, log zerolog.Logger) (*Worker, error) {
	w := &Worker{
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 10,
		}),
		scheduler: asynq.NewScheduler(redisOpt, nil),
		notifier:  notifier,
		sweep:     sweep,
		log:       log,
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(ports.TaskCallbackRetry, w.handleCallbackRetry)
	mux.HandleFunc(ports.TaskOrderSweep, w.handleSweep)
	w.mux = mux

	spec := fmt.Sprintf("@every %s", sweepInterval)
	if _, err := w.scheduler.Register(spec, asynq.NewTask(ports.TaskOrderSweep, nil)); err != nil {
		return nil, fmt.Errorf("register sweep task: %w", err)
	}

	return w, nil
}

// Start launches the task server and the periodic scheduler. Non-blocking.
func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("start task server: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return fmt.Errorf("start periodic scheduler: %w", err)
	}
	w.log.Info().Msg("task worker started")
	return nil
}

// Shutdown stops both components, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func (w *Worker) handleCallbackRetry(ctx context.Context, t *asynq.Task) error {
	var job ports.CallbackJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		w.log.Error().Err(err).Msg("malformed callback job payload")
		return nil // unparseable, retrying cannot help
	}
	orderID, err := uuid.Parse(job.OrderID)
	if err != nil {
		w.log.Error().Str("order_id", job.OrderID).Msg("malformed order id in callback job")
		return nil
	}

	err = w.notifier.Notify(ctx, orderID)
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == "CB_001" {
		// Budget exhausted: the order already carries the FAILED delivery
		// state, nothing left for the queue to do.
		return nil
	}
	w.log.Error().Err(err).
		Str("order_id", job.OrderID).
		Int("attempt", job.Attempt).
		Msg("callback delivery attempt errored")
	return err
}

func (w *Worker) handleSweep(ctx context.Context, _ *asynq.Task) error {
	_, err := w.sweep.Run(ctx)
	return err
}
