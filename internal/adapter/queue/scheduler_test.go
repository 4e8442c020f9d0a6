package queue

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionValue(opts []asynq.Option, typ asynq.OptionType) (interface{}, bool) {
	for _, opt := range opts {
		if opt.Type() == typ {
			return opt.Value(), true
		}
	}
	return nil, false
}

func TestTaskOptions_TransientRetriesEnabled(t *testing.T) {
	opts := taskOptions("cbretry:order-1:2", 5*time.Minute)

	id, ok := optionValue(opts, asynq.TaskIDOpt)
	require.True(t, ok)
	assert.Equal(t, "cbretry:order-1:2", id)

	// A transient handler error must lead to redelivery, not a silently
	// archived task that strands the merchant confirmation.
	maxRetry, ok := optionValue(opts, asynq.MaxRetryOpt)
	require.True(t, ok)
	assert.Positive(t, maxRetry.(int))

	_, ok = optionValue(opts, asynq.ProcessInOpt)
	assert.True(t, ok)
}

func TestTaskOptions_NoDelaySkipsProcessIn(t *testing.T) {
	opts := taskOptions("cbretry:order-1:1", 0)

	_, ok := optionValue(opts, asynq.ProcessInOpt)
	assert.False(t, ok)

	retention, ok := optionValue(opts, asynq.RetentionOpt)
	require.True(t, ok)
	assert.Equal(t, taskRetention, retention)
}
