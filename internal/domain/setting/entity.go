package setting

import "time"

// Setting - a named integer configuration value
type Setting struct {
	ID        string
	Name      string
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Names the billing engine reads.
const (
	NameWeeklyHours       = "WEEKLY_HOURS"
	NameWeeklyHoursSunday = "WEEKLY_HOURS_SUNDAY"
)

// Legal defaults applied when the named value is absent.
const (
	DefaultWeeklyHours       = 44
	DefaultWeeklyHoursSunday = 48
)
