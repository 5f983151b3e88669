package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var ran int
	s.AddJob("count", time.Minute, func(ctx context.Context) error {
		ran++
		return nil
	})
	s.AddJob("fails", time.Minute, func(ctx context.Context) error {
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}

func TestScheduler_RunOnce_RecoversPanickingJob(t *testing.T) {
	s := NewScheduler()
	var after bool
	s.AddJob("panics", time.Minute, func(ctx context.Context) error {
		panic("boom")
	})
	s.AddJob("next", time.Minute, func(ctx context.Context) error {
		after = true
		return nil
	})

	assert.NotPanics(t, func() { s.RunOnce(context.Background()) })
	assert.True(t, after, "a panicking job must not stop the remaining jobs")
}

func TestScheduler_JobTimeoutBoundsContext(t *testing.T) {
	s := NewScheduler()
	var deadlineSet bool
	s.AddJobWithTimeout("bounded", time.Minute, time.Second, func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})

	// The startup run fires before the first tick, so Start followed by
	// Stop executes the job exactly once.
	s.Start()
	s.Stop()
	assert.True(t, deadlineSet)
}
