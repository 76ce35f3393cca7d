package stats

import (
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
)

type StreakInfo struct {
	// CurrentStreak is the number of consecutive calendar days with at least
	// one workout, counting back from today. Zero when today has no workout.
	CurrentStreak int `json:"currentStreak"`
	// AtRisk marks a streak that is still alive through yesterday but will be
	// lost unless a workout happens today.
	AtRisk bool `json:"atRisk"`
}

func dayKey(t time.Time) string {
	return t.UTC().Format(bucketKeyLayout)
}

// Streak computes the current workout streak. Days are distinct UTC calendar
// dates, multiple workouts on the same day count once.
func Streak(workoutList []workouts.Workout, today time.Time) StreakInfo {
	days := make(map[string]bool, len(workoutList))
	for _, w := range workoutList {
		days[dayKey(w.Date)] = true
	}

	day := today.UTC()
	if !days[dayKey(day)] {
		yesterday := day.AddDate(0, 0, -1)
		return StreakInfo{
			CurrentStreak: 0,
			AtRisk:        days[dayKey(yesterday)],
		}
	}

	streak := 0
	for days[dayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return StreakInfo{CurrentStreak: streak}
}
