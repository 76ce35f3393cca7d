package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrUnknownExercise is returned when a set references an exercise type
	// that does not exist in the catalog.
	ErrUnknownExercise = errors.New("unknown exercise type")
)

type WorkoutParams struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
}

type ListParams struct {
	WorkoutParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the workout together with all its sets in a single transaction.
func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO workout
				(user_id, workout_date, duration_minutes, notes, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		workout.UserID, workout.Date, workout.DurationMinutes, workout.Notes, workout.CreatedAt,
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for i := range workout.Sets {
		workout.Sets[i].WorkoutID = workout.ID
		if workout.Sets[i].Order == 0 {
			workout.Sets[i].Order = i + 1
		}
		if err = r.insertSet(ctx, tx, &workout.Sets[i]); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

func (r *Repo) insertSet(ctx context.Context, tx pgx.Tx, set *Set) error {
	err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(workout_id, exercise_id, reps, weight_kilos, rest_seconds, set_order)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		set.WorkoutID, set.ExerciseID, set.Reps, set.WeightKilos, set.RestSeconds, set.Order,
	).Scan(&set.ID)
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, set.ExerciseID)
	}
	if err != nil {
		return fmt.Errorf("insert workout set: %w", err)
	}
	return nil
}

// Update replaces the workout fields and all its sets in a single transaction.
func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`UPDATE workout SET workout_date = $1, duration_minutes = $2, notes = $3 WHERE id = $4 AND user_id = $5;`,
		workout.Date, workout.DurationMinutes, workout.Notes, workout.ID, workout.UserID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	if _, err = tx.Exec(ctx, `DELETE FROM workout_set WHERE workout_id = $1;`, workout.ID); err != nil {
		return fmt.Errorf("delete workout sets: %w", err)
	}

	for i := range workout.Sets {
		workout.Sets[i].WorkoutID = workout.ID
		if workout.Sets[i].Order == 0 {
			workout.Sets[i].Order = i + 1
		}
		if err = r.insertSet(ctx, tx, &workout.Sets[i]); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	var workout Workout
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, user_id, workout_date, duration_minutes, notes, created_at
			FROM workout
			WHERE id = $1;`,
		id,
	).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Date,
		&workout.DurationMinutes,
		&workout.Notes,
		&workout.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("workout [query row]: %w", err)
	}

	workout.Sets, err = r.setsForWorkouts(ctx, []int{workout.ID})
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListAll returns all workouts for the user, sets included, newest first.
func (r *Repo) ListAll(ctx context.Context, params WorkoutParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", params.UserID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, user_id, workout_date, duration_minutes, notes, created_at
			FROM workout
			WHERE user_id = $1
				AND ($2::timestamp IS NULL OR workout_date >= $2)
				AND ($3::timestamp IS NULL OR workout_date <= $3)
			ORDER BY workout_date DESC;`,
		params.UserID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}

	if err := r.attachSets(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// List is like ListAll, but returns the specific PAGE of workouts, i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.WorkoutsCount(ctx, params.WorkoutParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, user_id, workout_date, duration_minutes, notes, created_at
			FROM workout
			WHERE user_id = $1
			ORDER BY workout_date DESC
			LIMIT $2 OFFSET $3;`,
		params.UserID, limit, offset,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, fmt.Errorf("rows2workouts: %w", err)
	}

	if err := r.attachSets(ctx, workouts); err != nil {
		return nil, -1, err
	}
	return workouts, countAll, nil
}

func (r *Repo) WorkoutsCount(ctx context.Context, params WorkoutParams) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			SELECT COUNT(*) FROM workout
			WHERE user_id = $1
				AND ($2::timestamp IS NULL OR workout_date >= $2)
				AND ($3::timestamp IS NULL OR workout_date <= $3);`,
		params.UserID, params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("workouts count: %w", err)
	}
	return count, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var workout Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Date,
			&workout.DurationMinutes,
			&workout.Notes,
			&workout.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}
	return workouts, nil
}

func (r *Repo) attachSets(ctx context.Context, workouts []Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	ids := make([]int, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}

	sets, err := r.setsForWorkouts(ctx, ids)
	if err != nil {
		return err
	}

	setsByWorkout := make(map[int][]Set)
	for _, s := range sets {
		setsByWorkout[s.WorkoutID] = append(setsByWorkout[s.WorkoutID], s)
	}
	for i := range workouts {
		workouts[i].Sets = setsByWorkout[workouts[i].ID]
		if workouts[i].Sets == nil {
			workouts[i].Sets = make([]Set, 0)
		}
	}
	return nil
}

func (r *Repo) setsForWorkouts(ctx context.Context, workoutIDs []int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, workout_id, exercise_id, reps, weight_kilos, rest_seconds, set_order
			FROM workout_set
			WHERE workout_id = ANY($1)
			ORDER BY workout_id, set_order;`,
		workoutIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var set Set
		if err := rows.Scan(
			&set.ID,
			&set.WorkoutID,
			&set.ExerciseID,
			&set.Reps,
			&set.WeightKilos,
			&set.RestSeconds,
			&set.Order,
		); err != nil {
			return nil, fmt.Errorf("workout sets [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets [rows]: %w", err)
	}

	if sets == nil {
		sets = make([]Set, 0)
	}
	return sets, nil
}
