package stats

import (
	"sort"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/exercises"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
)

type PersonalRecord struct {
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	MaxWeight    float64   `json:"maxWeight"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
}

// PersonalRecords finds the heaviest set per distinct exercise. Only a
// strictly greater weight replaces a record, so on equal weights the first
// encountered set is kept. The result is sorted by max weight, descending.
func PersonalRecords(workoutList []workouts.Workout, exIndex map[string]exercises.ExerciseType) []PersonalRecord {
	records := make(map[string]PersonalRecord)
	firstSeen := make(map[string]int)
	seen := 0

	for _, w := range workoutList {
		for _, set := range w.Sets {
			current, ok := records[set.ExerciseID]
			if !ok {
				firstSeen[set.ExerciseID] = seen
				seen++
			}
			if !ok || set.WeightKilos > current.MaxWeight {
				name := set.ExerciseID
				if exType, found := exIndex[set.ExerciseID]; found {
					name = exType.Name
				}
				records[set.ExerciseID] = PersonalRecord{
					ExerciseID:   set.ExerciseID,
					ExerciseName: name,
					MaxWeight:    set.WeightKilos,
					Reps:         set.Reps,
					Date:         w.Date,
				}
			}
		}
	}

	result := make([]PersonalRecord, 0, len(records))
	for _, record := range records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].MaxWeight != result[j].MaxWeight {
			return result[i].MaxWeight > result[j].MaxWeight
		}
		return firstSeen[result[i].ExerciseID] < firstSeen[result[j].ExerciseID]
	})
	return result
}
