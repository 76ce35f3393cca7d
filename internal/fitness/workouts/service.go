package workouts

import (
	"context"
	"fmt"

	"github.com/mkovacevic/fitstats/internal/telemetry/metrics"
	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

type serviceRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id int, userID uuid.UUID) error
}

// goalTracker derives goal progress from a stored workout. Tracking is
// best-effort: failures are logged and counted, never surfaced to the caller.
type goalTracker interface {
	UpdateFromWorkout(ctx context.Context, workout Workout) error
}

type Service struct {
	repo    serviceRepo
	tracker goalTracker
	metrics *metrics.Manager
}

func NewService(repo serviceRepo, tracker goalTracker, metrics *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		tracker: tracker,
		metrics: metrics,
	}
}

func (s *Service) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := s.repo.Add(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	s.metrics.CounterWorkouts.Inc()
	s.trackGoals(ctx, *added)

	return added, nil
}

func (s *Service) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Update(ctx, workout); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}

	s.trackGoals(ctx, *workout)

	return nil
}

func (s *Service) Delete(ctx context.Context, id int, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Delete(ctx, id, userID)
}

func (s *Service) trackGoals(ctx context.Context, workout Workout) {
	if err := s.tracker.UpdateFromWorkout(ctx, workout); err != nil {
		log.Errorf("track goals for workout %d: %s", workout.ID, err)
		s.metrics.CounterGoalTrackingFailures.Inc()
	}
}
