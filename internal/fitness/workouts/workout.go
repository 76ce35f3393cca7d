package workouts

import (
	"time"

	"github.com/google/uuid"
)

// Set is a single exercise set performed within a workout.
type Set struct {
	ID          int     `json:"id"`
	WorkoutID   int     `json:"workoutId"`
	ExerciseID  string  `json:"exerciseId"`
	Reps        int     `json:"reps"`
	WeightKilos float64 `json:"weightKilos"`
	RestSeconds int     `json:"restSeconds"`
	Order       int     `json:"order"`
}

// Volume is weight times reps, the basic unit of all volume aggregations.
func (s Set) Volume() float64 {
	return s.WeightKilos * float64(s.Reps)
}

type Workout struct {
	ID              int       `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
	Sets            []Set     `json:"sets"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (w Workout) TotalVolume() float64 {
	var volume float64
	for _, s := range w.Sets {
		volume += s.Volume()
	}
	return volume
}

func (w Workout) TotalReps() int {
	var reps int
	for _, s := range w.Sets {
		reps += s.Reps
	}
	return reps
}

func (w Workout) MaxSetWeight() float64 {
	var max float64
	for _, s := range w.Sets {
		if s.WeightKilos > max {
			max = s.WeightKilos
		}
	}
	return max
}
