package goals

import (
	"context"
	"fmt"

	"github.com/mkovacevic/fitstats/internal/fitness/stats"
	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
	"github.com/mkovacevic/fitstats/internal/telemetry/metrics"
	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=goals

type trackerRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	AppendProgress(ctx context.Context, entry ProgressEntry) (_ *ProgressEntry, completed bool, err error)
}

// contributionFunc derives a goal contribution from single-workout metrics.
// The bool result marks whether the workout contributes at all.
type contributionFunc func(m stats.WorkoutMetrics) (value float64, notes string, ok bool)

// contributions is the full table of goal types the tracker can derive
// progress for. Weight and custom goals are deliberately absent: their
// progress cannot be read off a workout and comes in through manual updates.
var contributions = map[GoalType]contributionFunc{
	GoalTypeVolume: func(m stats.WorkoutMetrics) (float64, string, bool) {
		if m.TotalVolume <= 0 {
			return 0, "", false
		}
		return m.TotalVolume, fmt.Sprintf("workout volume %.1f kg", m.TotalVolume), true
	},
	GoalTypeFrequency: func(m stats.WorkoutMetrics) (float64, string, bool) {
		// every workout counts, even one with no weighted sets
		return 1, "workout completed", true
	},
	GoalTypeStrength: func(m stats.WorkoutMetrics) (float64, string, bool) {
		if m.MaxSetWeight <= 0 {
			return 0, "", false
		}
		return m.MaxSetWeight, fmt.Sprintf("heaviest set %.1f kg", m.MaxSetWeight), true
	},
	GoalTypeEndurance: func(m stats.WorkoutMetrics) (float64, string, bool) {
		if m.TotalReps <= 0 {
			return 0, "", false
		}
		return float64(m.TotalReps), fmt.Sprintf("%d reps", m.TotalReps), true
	},
}

// Tracker is the goal progress engine. After every workout write it walks the
// user's active goals and appends derived progress entries.
type Tracker struct {
	repo    trackerRepo
	metrics *metrics.Manager
}

func NewTracker(repo trackerRepo, metrics *metrics.Manager) *Tracker {
	return &Tracker{
		repo:    repo,
		metrics: metrics,
	}
}

// UpdateFromWorkout derives progress for all of the user's active goals. One
// failing goal does not stop the others, collected errors are returned
// combined for the caller to log.
func (t *Tracker) UpdateFromWorkout(ctx context.Context, workout workouts.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.tracker.update_from_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	activeGoals, err := t.repo.ListActive(ctx, workout.UserID)
	if err != nil {
		return fmt.Errorf("list active goals: %w", err)
	}
	if len(activeGoals) == 0 {
		return nil
	}

	workoutMetrics := stats.ComputeWorkoutMetrics(workout)

	var errs error
	for _, goal := range activeGoals {
		contribute, tracked := contributions[goal.Type]
		if !tracked {
			continue
		}
		value, notes, ok := contribute(workoutMetrics)
		if !ok {
			continue
		}

		_, completed, err := t.repo.AppendProgress(ctx, ProgressEntry{
			GoalID:    goal.ID,
			WorkoutID: workout.ID,
			Value:     value,
			Notes:     notes,
			CreatedAt: workout.Date,
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("goal %d: %w", goal.ID, err))
			continue
		}

		t.metrics.CounterGoalProgressEntries.Inc()
		if completed {
			log.Infof("goal %d [%s] completed by workout %d", goal.ID, goal.Name, workout.ID)
		}
	}
	return errs
}
