package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mkovacevic/fitstats/internal/db"
	"github.com/mkovacevic/fitstats/internal/fitness/exercises"
	"github.com/mkovacevic/fitstats/internal/fitness/goals"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
	"github.com/mkovacevic/fitstats/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// dev tool: fills a local fitstats database with a fake exercise catalog,
// a few months of workouts and a couple of goals, going through the real
// repos and the goal tracker so progress entries get derived too.

var exerciseCatalog = []exercises.ExerciseType{
	{ID: "bench-press", Name: "Bench Press", MuscleGroup: exercises.MuscleGroup.Chest, Category: exercises.Category.Strength},
	{ID: "incline-dumbbell-press", Name: "Incline Dumbbell Press", MuscleGroup: exercises.MuscleGroup.Chest, Category: exercises.Category.Strength},
	{ID: "squat", Name: "Back Squat", MuscleGroup: exercises.MuscleGroup.Legs, Category: exercises.Category.Strength},
	{ID: "leg-press", Name: "Leg Press", MuscleGroup: exercises.MuscleGroup.Legs, Category: exercises.Category.Strength},
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: exercises.MuscleGroup.Back, Category: exercises.Category.Strength},
	{ID: "barbell-row", Name: "Barbell Row", MuscleGroup: exercises.MuscleGroup.Back, Category: exercises.Category.Strength},
	{ID: "overhead-press", Name: "Overhead Press", MuscleGroup: exercises.MuscleGroup.Shoulders, Category: exercises.Category.Strength},
	{ID: "biceps-curl", Name: "Biceps Curl", MuscleGroup: exercises.MuscleGroup.Arms, Category: exercises.Category.Strength},
	{ID: "plank", Name: "Plank", MuscleGroup: exercises.MuscleGroup.Core, Category: exercises.Category.Mobility},
	{ID: "rowing-machine", Name: "Rowing Machine", MuscleGroup: exercises.MuscleGroup.Cardio, Category: exercises.Category.Cardio},
}

func main() {
	dbHost := flag.String("db-host", "localhost", "postgres host")
	dbPort := flag.String("db-port", "5432", "postgres port")
	dbName := flag.String("db-name", "fitstats_db", "postgres db name")
	workoutsCount := flag.Int("workouts", 60, "number of workouts to generate")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: *dbHost,
		DBPort: *dbPort,
		DBName: *dbName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("fitstats", "datagen", prometheus.NewRegistry())

	exercisesRepo := exercises.NewRepo(dbPool)
	goalsRepo := goals.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	workoutsService := workouts.NewService(
		workoutsRepo,
		goals.NewTracker(goalsRepo, metricsManager),
		metricsManager,
	)

	for _, exerciseType := range exerciseCatalog {
		exerciseType.Description = gofakeit.Sentence(8)
		exerciseType.CreatedAt = time.Now()
		if err := exercisesRepo.Add(ctx, exerciseType); err != nil {
			log.Warnf("add exercise type %s: %s", exerciseType.ID, err)
		}
	}
	log.Infof("exercise catalog seeded, %d types", len(exerciseCatalog))

	userID := uuid.New()
	log.Infof("generating data for user %s", userID)

	seedGoals := []goals.Goal{
		{
			UserID: userID, Type: goals.GoalTypeVolume,
			Name: "quarter million kilos", TargetValue: 250_000, Unit: "kg",
		},
		{
			UserID: userID, Type: goals.GoalTypeFrequency,
			Name: fmt.Sprintf("%d workouts", *workoutsCount), TargetValue: float64(*workoutsCount), Unit: "workouts",
		},
		{
			UserID: userID, Type: goals.GoalTypeStrength,
			Name: "150 kg lift", TargetValue: 150, Unit: "kg",
		},
	}
	for _, goal := range seedGoals {
		goal.Description = gofakeit.Sentence(6)
		if _, err := goalsRepo.Add(ctx, goal); err != nil {
			log.Fatalf("add goal [%s]: %s", goal.Name, err)
		}
	}
	log.Infof("%d goals seeded", len(seedGoals))

	// a workout every day or two, walking back from today
	day := time.Now().UTC()
	for i := 0; i < *workoutsCount; i++ {
		workout := workouts.Workout{
			UserID:          userID,
			Date:            day,
			DurationMinutes: gofakeit.Number(30, 110),
			Notes:           gofakeit.HipsterSentence(5),
		}
		setsCount := gofakeit.Number(6, 18)
		for j := 0; j < setsCount; j++ {
			exerciseType := exerciseCatalog[gofakeit.Number(0, len(exerciseCatalog)-1)]
			workout.Sets = append(workout.Sets, workouts.Set{
				ExerciseID:  exerciseType.ID,
				Reps:        gofakeit.Number(3, 15),
				WeightKilos: float64(gofakeit.Number(20, 140)),
				RestSeconds: gofakeit.Number(30, 180),
				Order:       j + 1,
			})
		}

		added, err := workoutsService.Add(ctx, workout)
		if err != nil {
			log.Fatalf("add workout for %s: %s", day.Format("2006-01-02"), err)
		}
		log.Debugf("workout %d added: %s, %d sets", added.ID, day.Format("2006-01-02"), setsCount)

		day = day.AddDate(0, 0, -gofakeit.Number(1, 2))
	}

	log.Infof("done, %d workouts generated", *workoutsCount)
}
