package operation

import "time"

// Status enum for the operation lifecycle
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Flag is a YES/NO tariff switch as stored on the tariff tables.
type Flag string

const (
	FlagYes Flag = "YES"
	FlagNo  Flag = "NO"
)

// Unit of measure values recognized by the billing engine. Anything else
// routes the group to the quantity mode.
const (
	UnitHours  = "HOURS"
	UnitJornal = "JORNAL"
)

// Operation - a vessel/yard operation that groups of workers are attached to
type Operation struct {
	ID        string
	Name      string
	StartsAt  time.Time
	EndsAt    time.Time
	Duration  float64 // sum of the group durations, in hours
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Worker - a member of a group roster
type Worker struct {
	ID   string
	Name string
}

// GroupSummary - one group of workers sharing a schedule/tariff assignment
// within an operation. Assembled by the schedule/tariff collaborator from the
// assignment and tariff tables; read-only to the billing engine.
type GroupSummary struct {
	GroupID                string
	StartsAt               time.Time
	EndsAt                 time.Time
	UnitOfMeasure          string
	AlternativePaidService Flag
	GroupTariff            Flag
	FullTariff             Flag
	CompensatoryTariff     Flag
	FacturationUnit        string
	PaysheetUnit           string
	FacturationTariff      float64
	PaysheetTariff         float64
	AgreedHours            float64
	WorkerCount            int
	Workers                []Worker
}

// TimeWindow - one worker's raw scheduled window within a group
type TimeWindow struct {
	WorkerID string
	Start    time.Time
	End      time.Time
}
