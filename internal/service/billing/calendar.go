package billing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
)

// CalendarPolicy resolves week numbers, Sunday spans and the legally-weighted
// weekly-hour caps. Caps come from named configuration values and are cached
// until Invalidate is called after a configuration write.
type CalendarPolicy struct {
	settingRepo setting.SettingRepository

	mu    sync.RWMutex
	cache map[string]int
}

func NewCalendarPolicy(settingRepo setting.SettingRepository) *CalendarPolicy {
	return &CalendarPolicy{
		settingRepo: settingRepo,
		cache:       make(map[string]int),
	}
}

// WeeklyCap returns the weekly-hour cap for a range: one configured value
// when the range includes a Sunday, another otherwise.
func (p *CalendarPolicy) WeeklyCap(ctx context.Context, hasSunday bool) float64 {
	if hasSunday {
		return float64(p.value(ctx, setting.NameWeeklyHoursSunday, setting.DefaultWeeklyHoursSunday))
	}
	return float64(p.value(ctx, setting.NameWeeklyHours, setting.DefaultWeeklyHours))
}

// Invalidate drops the cached values. Must be called whenever a named
// configuration value is written.
func (p *CalendarPolicy) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]int)
}

func (p *CalendarPolicy) value(ctx context.Context, name string, fallback int) int {
	p.mu.RLock()
	if v, ok := p.cache[name]; ok {
		p.mu.RUnlock()
		return v
	}
	p.mu.RUnlock()

	s, err := p.settingRepo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			slog.Warn("setting lookup failed, using default", "name", name, "error", err)
		}
		return fallback
	}

	p.mu.Lock()
	p.cache[name] = s.Value
	p.mu.Unlock()
	return s.Value
}

// HasSunday reports whether [start, end] contains at least one Sunday.
// The walk runs over calendar dates, so a range touching any part of a
// Sunday counts regardless of the endpoints' time of day.
func HasSunday(start, end time.Time) bool {
	if end.Before(start) {
		start, end = end, start
	}
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			return true
		}
	}
	return false
}

// WeekNumber returns the ISO 8601 week number of t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
