package stats

import (
	"sort"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/exercises"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"

	montanastats "github.com/montanaflynn/stats"
)

// WorkoutMetrics are the single-workout numbers the goal tracker derives
// contributions from.
type WorkoutMetrics struct {
	TotalVolume  float64 `json:"totalVolume"`
	TotalSets    int     `json:"totalSets"`
	TotalReps    int     `json:"totalReps"`
	MaxSetWeight float64 `json:"maxSetWeight"`
}

func ComputeWorkoutMetrics(workout workouts.Workout) WorkoutMetrics {
	return WorkoutMetrics{
		TotalVolume:  workout.TotalVolume(),
		TotalSets:    len(workout.Sets),
		TotalReps:    workout.TotalReps(),
		MaxSetWeight: workout.MaxSetWeight(),
	}
}

// TotalVolume is the sum of weight times reps over all sets of all workouts.
func TotalVolume(workoutList []workouts.Workout) float64 {
	var volume float64
	for _, w := range workoutList {
		volume += w.TotalVolume()
	}
	return volume
}

func TotalSets(workoutList []workouts.Workout) int {
	var sets int
	for _, w := range workoutList {
		sets += len(w.Sets)
	}
	return sets
}

// AverageDuration returns the mean workout duration in minutes, and an
// explicit 0 for an empty input.
func AverageDuration(workoutList []workouts.Workout) float64 {
	if len(workoutList) == 0 {
		return 0
	}
	durations := make([]float64, 0, len(workoutList))
	for _, w := range workoutList {
		durations = append(durations, float64(w.DurationMinutes))
	}
	mean, err := montanastats.Mean(durations)
	if err != nil {
		return 0
	}
	return mean
}

// MuscleGroupDistribution counts sets per muscle group. A set whose exercise
// is not present in the index is excluded from the distribution.
func MuscleGroupDistribution(workoutList []workouts.Workout, exIndex map[string]exercises.ExerciseType) map[string]int {
	distribution := make(map[string]int)
	for _, w := range workoutList {
		for _, set := range w.Sets {
			exType, ok := exIndex[set.ExerciseID]
			if !ok || exType.MuscleGroup == "" {
				continue
			}
			distribution[exType.MuscleGroup]++
		}
	}
	return distribution
}

type BucketVolume struct {
	Bucket   string  `json:"bucket"`
	Volume   float64 `json:"volume"`
	Workouts int     `json:"workouts"`
}

// VolumeByBucket produces a contiguous, zero-filled series of the trailing
// windowSize buckets ending with the bucket that contains today. Every
// workout contributes to exactly one bucket.
func VolumeByBucket(workoutList []workouts.Workout, granularity Granularity, windowSize int, today time.Time) []BucketVolume {
	if windowSize < 1 {
		return make([]BucketVolume, 0)
	}

	starts := make([]time.Time, windowSize)
	starts[windowSize-1] = BucketStart(today, granularity)
	for i := windowSize - 2; i >= 0; i-- {
		starts[i] = PrevBucketStart(starts[i+1], granularity)
	}

	series := make([]BucketVolume, windowSize)
	index := make(map[string]int, windowSize)
	for i, start := range starts {
		key := start.Format(bucketKeyLayout)
		series[i] = BucketVolume{Bucket: key}
		index[key] = i
	}

	for _, w := range workoutList {
		i, ok := index[BucketKey(w.Date, granularity)]
		if !ok {
			continue
		}
		series[i].Volume += w.TotalVolume()
		series[i].Workouts++
	}
	return series
}

type ExerciseFrequency struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
}

// MostFrequentExercises ranks exercises by the number of sets referencing
// them. Ties are broken by which exercise was encountered first, keeping the
// ordering stable across calls.
func MostFrequentExercises(workoutList []workouts.Workout, exIndex map[string]exercises.ExerciseType, limit int) []ExerciseFrequency {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seen := 0

	for _, w := range workoutList {
		for _, set := range w.Sets {
			if _, ok := counts[set.ExerciseID]; !ok {
				firstSeen[set.ExerciseID] = seen
				seen++
			}
			counts[set.ExerciseID]++
		}
	}

	frequencies := make([]ExerciseFrequency, 0, len(counts))
	for exerciseID, count := range counts {
		name := exerciseID
		if exType, ok := exIndex[exerciseID]; ok {
			name = exType.Name
		}
		frequencies = append(frequencies, ExerciseFrequency{
			ExerciseID:   exerciseID,
			ExerciseName: name,
			Sets:         count,
		})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Sets != frequencies[j].Sets {
			return frequencies[i].Sets > frequencies[j].Sets
		}
		return firstSeen[frequencies[i].ExerciseID] < firstSeen[frequencies[j].ExerciseID]
	})

	if limit > 0 && len(frequencies) > limit {
		frequencies = frequencies[:limit]
	}
	return frequencies
}
