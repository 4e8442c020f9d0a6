package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// taskRetention keeps finished tasks inspectable for a day.
const taskRetention = 24 * time.Hour

// taskMaxRetry bounds queue-level redelivery when a handler returns a
// transient error. Business outcomes (success, budget exhausted) return nil
// from handlers and never reach this budget.
const taskMaxRetry = 10

// Scheduler implements ports.JobScheduler on asynq. Task ids double as dedup
// keys: enqueueing an id that already exists is silently collapsed, which
// gives at-most-one scheduling per (order, attempt).
type Scheduler struct {
	client *asynq.Client
	log    zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(redisOpt),
		log:    log,
	}
}

// Schedule enqueues a task for execution after delay. Duplicate job ids are
// a no-op. Application code owns the attempt ladder; queue-level retry only
// redelivers the same task id after transient handler errors.
func (s *Scheduler) Schedule(ctx context.Context, jobID string, taskType string, payload []byte, delay time.Duration) error {
	info, err := s.client.EnqueueContext(ctx, asynq.NewTask(taskType, payload), taskOptions(jobID, delay)...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			s.log.Debug().Str("job_id", jobID).Msg("task already scheduled")
			return nil
		}
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	s.log.Debug().
		Str("job_id", jobID).
		Str("task", taskType).
		Str("queue", info.Queue).
		Dur("delay", delay).
		Msg("task scheduled")
	return nil
}

// taskOptions builds the enqueue options for one task: id-based dedup, a
// positive transient-retry budget, and retention for inspection.
func taskOptions(jobID string, delay time.Duration) []asynq.Option {
	opts := []asynq.Option{
		asynq.TaskID(jobID),
		asynq.MaxRetry(taskMaxRetry),
		asynq.Retention(taskRetention),
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	return opts
}

// Close releases the underlying client connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
