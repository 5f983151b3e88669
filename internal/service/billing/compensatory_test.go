package billing

import (
	"context"
	"testing"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/stretchr/testify/assert"
)

// Monday through Saturday of one week, no Sunday in range.
var (
	weekStart = date(2025, time.March, 3)
	weekEnd   = date(2025, time.March, 8)
)

func TestCompensatoryHours_CompletedFullDay(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	// Cap 44/6 = 7.3333 hours per day; a full day accrues one sixth of a
	// day: 44/36 = 1.2222 hours.
	got := cal.CompensatoryHours(ctx, 8, billing.StatusCompleted, weekStart, weekEnd)
	assert.InDelta(t, 44.0/36.0, got, 1e-4)
}

func TestCompensatoryHours_CompletedPartialDay(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	// Below the cap the accrual is proportional: hours x (1/6).
	got := cal.CompensatoryHours(ctx, 3, billing.StatusCompleted, weekStart, weekEnd)
	assert.InDelta(t, 3.0/6.0, got, 1e-4)
}

func TestCompensatoryHours_SundayInRange(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	sundayEnd := date(2025, time.March, 9)
	got := cal.CompensatoryHours(ctx, 8, billing.StatusCompleted, weekStart, sundayEnd)
	assert.Zero(t, got)
}

func TestCompensatoryHours_SundayEndsBeforeStartTimeOfDay(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	// The range ends on a Sunday morning, earlier in the day than the
	// Wednesday start time. The Sunday still suppresses accrual.
	start := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 9, 6, 0, 0, 0, time.UTC)
	got := cal.CompensatoryHours(ctx, 8, billing.StatusCompleted, start, end)
	assert.Zero(t, got)
}

func TestCompensatoryHours_ProvisionalPlaceholder(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	// Before completion, anything above the daily cap yields the fixed
	// one-sixth-of-a-day placeholder regardless of the excess.
	placeholder := cal.CompensatoryHours(ctx, 8, billing.StatusActive, weekStart, weekEnd)
	assert.InDelta(t, 44.0/36.0, placeholder, 1e-4)

	same := cal.CompensatoryHours(ctx, 20, billing.StatusActive, weekStart, weekEnd)
	assert.InDelta(t, placeholder, same, 1e-9)

	// Below the cap the provisional figure matches the completed one.
	below := cal.CompensatoryHours(ctx, 3, billing.StatusActive, weekStart, weekEnd)
	assert.InDelta(t, 3.0/6.0, below, 1e-4)
}

func TestCompensatoryResult(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	res := cal.CompensatoryResult(ctx, 8, billing.StatusCompleted, weekStart, weekEnd, 2, 10000)

	assert.InDelta(t, 44.0/36.0, res.Hours, 1e-4)
	assert.InDelta(t, res.Hours*2*10000, res.Amount, 1e-6)
	assert.InDelta(t, 1.0/6.0, res.Percentage, 1e-9)
}
