package goals

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalTypeVolume    GoalType = "volume"
	GoalTypeFrequency GoalType = "frequency"
	GoalTypeStrength  GoalType = "strength"
	GoalTypeWeight    GoalType = "weight"
	GoalTypeEndurance GoalType = "endurance"
	GoalTypeCustom    GoalType = "custom"
)

func (gt GoalType) String() string {
	return string(gt)
}

func (gt GoalType) IsValid() bool {
	switch gt {
	case GoalTypeVolume, GoalTypeFrequency, GoalTypeStrength,
		GoalTypeWeight, GoalTypeEndurance, GoalTypeCustom:
		return true
	}
	return false
}

type Goal struct {
	ID           int        `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Type         GoalType   `json:"type"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ProgressEntry is one derived contribution towards a goal. The progress log
// is append-only, entries are never updated or removed.
type ProgressEntry struct {
	ID        int       `json:"id"`
	GoalID    int       `json:"goalId"`
	WorkoutID int       `json:"workoutId"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
