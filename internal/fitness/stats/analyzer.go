package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/exercises"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type workoutsRepo interface {
	ListAll(ctx context.Context, params workouts.WorkoutParams) ([]workouts.Workout, error)
}

type exercisesRepo interface {
	List(ctx context.Context, params exercises.ListParams) ([]exercises.ExerciseType, error)
}

// Summary bundles the all-time numbers shown on the user's dashboard.
type Summary struct {
	TotalWorkouts           int                 `json:"totalWorkouts"`
	TotalVolume             float64             `json:"totalVolume"`
	TotalSets               int                 `json:"totalSets"`
	AverageDurationMinutes  float64             `json:"averageDurationMinutes"`
	MuscleGroupDistribution map[string]int      `json:"muscleGroupDistribution"`
	MostFrequentExercises   []ExerciseFrequency `json:"mostFrequentExercises"`
	Streak                  StreakInfo          `json:"streak"`
}

const topExercisesLimit = 5

// Analyzer computes user workout reports, with a small cache in front of the
// heavier aggregations.
type Analyzer struct {
	workouts  workoutsRepo
	exercises exercisesRepo
	cache     Cache

	// NowFunc is replaceable for deterministic tests.
	NowFunc func() time.Time
}

func NewAnalyzer(workoutsRepo workoutsRepo, exercisesRepo exercisesRepo, cache Cache) *Analyzer {
	return &Analyzer{
		workouts:  workoutsRepo,
		exercises: exercisesRepo,
		cache:     cache,
		NowFunc:   time.Now,
	}
}

func (a *Analyzer) userWorkouts(ctx context.Context, userID uuid.UUID) ([]workouts.Workout, error) {
	workoutList, err := a.workouts.ListAll(ctx, workouts.WorkoutParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workoutList, nil
}

func (a *Analyzer) exerciseIndex(ctx context.Context) (map[string]exercises.ExerciseType, error) {
	exerciseTypes, err := a.exercises.List(ctx, exercises.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}
	index := make(map[string]exercises.ExerciseType, len(exerciseTypes))
	for _, exType := range exerciseTypes {
		index[exType.ID] = exType
	}
	return index, nil
}

func cacheLookup[T any](a *Analyzer, key string) (*T, bool) {
	cached, ok := a.cache.Get(key)
	if !ok {
		return nil, false
	}
	var value T
	if err := json.Unmarshal(cached, &value); err != nil {
		log.Errorf("stats cache, unmarshal %s: %s", key, err)
		return nil, false
	}
	return &value, true
}

func cacheStore[T any](a *Analyzer, key string, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Errorf("stats cache, marshal %s: %s", key, err)
		return
	}
	a.cache.Set(key, payload)
}

func (a *Analyzer) Summary(ctx context.Context, userID uuid.UUID) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	cacheKey := "summary||" + userID.String()
	if summary, ok := cacheLookup[Summary](a, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return summary, nil
	}

	workoutList, err := a.userWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	exIndex, err := a.exerciseIndex(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalWorkouts:           len(workoutList),
		TotalVolume:             TotalVolume(workoutList),
		TotalSets:               TotalSets(workoutList),
		AverageDurationMinutes:  AverageDuration(workoutList),
		MuscleGroupDistribution: MuscleGroupDistribution(workoutList, exIndex),
		MostFrequentExercises:   MostFrequentExercises(workoutList, exIndex, topExercisesLimit),
		Streak:                  Streak(workoutList, a.NowFunc()),
	}

	cacheStore(a, cacheKey, summary)
	return summary, nil
}

func (a *Analyzer) VolumeSeries(
	ctx context.Context,
	userID uuid.UUID,
	granularity Granularity,
	windowSize int,
) (_ []BucketVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.volume_series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("granularity", granularity.String()))
	span.SetAttributes(attribute.Int("window", windowSize))

	cacheKey := fmt.Sprintf("volume||%s||%s||%d", userID, granularity, windowSize)
	if series, ok := cacheLookup[[]BucketVolume](a, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return *series, nil
	}

	workoutList, err := a.userWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	series := VolumeByBucket(workoutList, granularity, windowSize, a.NowFunc())
	cacheStore(a, cacheKey, series)
	return series, nil
}

func (a *Analyzer) Records(ctx context.Context, userID uuid.UUID) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	cacheKey := "records||" + userID.String()
	if records, ok := cacheLookup[[]PersonalRecord](a, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return *records, nil
	}

	workoutList, err := a.userWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	exIndex, err := a.exerciseIndex(ctx)
	if err != nil {
		return nil, err
	}

	records := PersonalRecords(workoutList, exIndex)
	cacheStore(a, cacheKey, records)
	return records, nil
}

// CurrentStreak is never cached, a stale streak reads as plain wrong.
func (a *Analyzer) CurrentStreak(ctx context.Context, userID uuid.UUID) (_ *StreakInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	workoutList, err := a.userWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak := Streak(workoutList, a.NowFunc())
	return &streak, nil
}

func (a *Analyzer) Comparison(
	ctx context.Context,
	userID uuid.UUID,
	granularity Granularity,
) (_ *PeriodComparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.comparison")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("granularity", granularity.String()))

	cacheKey := fmt.Sprintf("comparison||%s||%s", userID, granularity)
	if comparison, ok := cacheLookup[PeriodComparison](a, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return comparison, nil
	}

	workoutList, err := a.userWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	comparison := ComparePeriods(workoutList, granularity, a.NowFunc())
	cacheStore(a, cacheKey, &comparison)
	return &comparison, nil
}
