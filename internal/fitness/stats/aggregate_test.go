package stats

import (
	"testing"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/exercises"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExIndex = map[string]exercises.ExerciseType{
	"bench-press": {ID: "bench-press", Name: "Bench Press", MuscleGroup: "chest"},
	"squat":       {ID: "squat", Name: "Squat", MuscleGroup: "legs"},
	"deadlift":    {ID: "deadlift", Name: "Deadlift", MuscleGroup: "back"},
}

func workoutOn(date time.Time, sets ...workouts.Set) workouts.Workout {
	return workouts.Workout{Date: date, Sets: sets}
}

func TestTotalVolume(t *testing.T) {
	assert.Equal(t, float64(0), TotalVolume(nil))
	assert.Equal(t, float64(0), TotalVolume([]workouts.Workout{}))

	workoutList := []workouts.Workout{
		workoutOn(time.Now(),
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
			workouts.Set{ExerciseID: "squat", Reps: 5, WeightKilos: 100},
		),
		workoutOn(time.Now(),
			workouts.Set{ExerciseID: "deadlift", Reps: 3, WeightKilos: 140},
		),
	}
	// 600 + 500 + 420
	assert.Equal(t, float64(1520), TotalVolume(workoutList))
	assert.Equal(t, 3, TotalSets(workoutList))
}

func TestComputeWorkoutMetrics(t *testing.T) {
	workout := workoutOn(time.Now(),
		workouts.Set{ExerciseID: "bench-press", Reps: 8, WeightKilos: 80},
		workouts.Set{ExerciseID: "bench-press", Reps: 12, WeightKilos: 60},
	)
	m := ComputeWorkoutMetrics(workout)
	assert.Equal(t, float64(1360), m.TotalVolume)
	assert.Equal(t, 2, m.TotalSets)
	assert.Equal(t, 20, m.TotalReps)
	assert.Equal(t, float64(80), m.MaxSetWeight)
}

func TestAverageDuration(t *testing.T) {
	// empty input yields an explicit zero, not NaN
	assert.Equal(t, float64(0), AverageDuration(nil))

	workoutList := []workouts.Workout{
		{DurationMinutes: 30},
		{DurationMinutes: 60},
		{DurationMinutes: 45},
	}
	assert.Equal(t, float64(45), AverageDuration(workoutList))
}

func TestMuscleGroupDistribution(t *testing.T) {
	workoutList := []workouts.Workout{
		workoutOn(time.Now(),
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
			workouts.Set{ExerciseID: "squat", Reps: 5, WeightKilos: 100},
			workouts.Set{ExerciseID: "mystery-machine", Reps: 5, WeightKilos: 10},
		),
	}

	distribution := MuscleGroupDistribution(workoutList, testExIndex)
	// the unknown exercise is excluded, not counted under some "other" group
	assert.Equal(t, map[string]int{"chest": 2, "legs": 1}, distribution)
}

func TestVolumeByBucket(t *testing.T) {
	today := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) // Wednesday
	workoutList := []workouts.Workout{
		// current week (bucket 2024-01-07)
		workoutOn(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 50}),
		workoutOn(time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC),
			workouts.Set{ExerciseID: "squat", Reps: 10, WeightKilos: 80}),
		// previous week (bucket 2023-12-31)
		workoutOn(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			workouts.Set{ExerciseID: "deadlift", Reps: 5, WeightKilos: 120}),
		// outside the window
		workoutOn(time.Date(2023, 11, 1, 9, 0, 0, 0, time.UTC),
			workouts.Set{ExerciseID: "squat", Reps: 10, WeightKilos: 200}),
	}

	series := VolumeByBucket(workoutList, GranularityWeek, 3, today)
	require.Len(t, series, 3)

	// zero-filled, contiguous, oldest first
	assert.Equal(t, "2023-12-24", series[0].Bucket)
	assert.Equal(t, float64(0), series[0].Volume)
	assert.Equal(t, 0, series[0].Workouts)

	assert.Equal(t, "2023-12-31", series[1].Bucket)
	assert.Equal(t, float64(600), series[1].Volume)
	assert.Equal(t, 1, series[1].Workouts)

	assert.Equal(t, "2024-01-07", series[2].Bucket)
	assert.Equal(t, float64(1300), series[2].Volume)
	assert.Equal(t, 2, series[2].Workouts)
}

func TestVolumeByBucket_EmptyWindow(t *testing.T) {
	series := VolumeByBucket(nil, GranularityWeek, 0, time.Now())
	assert.Empty(t, series)
}

func TestMostFrequentExercises(t *testing.T) {
	now := time.Now()
	workoutList := []workouts.Workout{
		workoutOn(now,
			workouts.Set{ExerciseID: "squat", Reps: 5, WeightKilos: 100},
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
		),
		workoutOn(now,
			workouts.Set{ExerciseID: "deadlift", Reps: 3, WeightKilos: 140},
			workouts.Set{ExerciseID: "deadlift", Reps: 3, WeightKilos: 140},
		),
	}

	frequencies := MostFrequentExercises(workoutList, testExIndex, 0)
	require.Len(t, frequencies, 3)

	// bench-press and deadlift both have 2 sets, bench-press was seen first
	assert.Equal(t, "bench-press", frequencies[0].ExerciseID)
	assert.Equal(t, "Bench Press", frequencies[0].ExerciseName)
	assert.Equal(t, 2, frequencies[0].Sets)
	assert.Equal(t, "deadlift", frequencies[1].ExerciseID)
	assert.Equal(t, "squat", frequencies[2].ExerciseID)
}

func TestMostFrequentExercises_Limit(t *testing.T) {
	workoutList := []workouts.Workout{
		workoutOn(time.Now(),
			workouts.Set{ExerciseID: "squat", Reps: 5, WeightKilos: 100},
			workouts.Set{ExerciseID: "bench-press", Reps: 10, WeightKilos: 60},
		),
	}
	frequencies := MostFrequentExercises(workoutList, testExIndex, 1)
	require.Len(t, frequencies, 1)
}
