package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const goalColumns = `
	id, user_id, goal_type, name, description, target_value, current_value,
	unit, start_date, end_date, is_completed, completed_at, created_at`

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	if goal.StartDate.IsZero() {
		goal.StartDate = goal.CreatedAt
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO goal
				(user_id, goal_type, name, description, target_value, current_value,
				 unit, start_date, end_date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		goal.UserID, goal.Type, goal.Name, goal.Description, goal.TargetValue,
		goal.CurrentValue, goal.Unit, goal.StartDate, goal.EndDate, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))
	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	var goal Goal
	err = r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goal WHERE id = $1;`,
		id,
	).Scan(
		&goal.ID, &goal.UserID, &goal.Type, &goal.Name, &goal.Description,
		&goal.TargetValue, &goal.CurrentValue, &goal.Unit, &goal.StartDate,
		&goal.EndDate, &goal.IsCompleted, &goal.CompletedAt, &goal.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("goal [query row]: %w", err)
	}
	return &goal, nil
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goal.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal
			SET goal_type = $1, name = $2, description = $3, target_value = $4,
				unit = $5, start_date = $6, end_date = $7
			WHERE id = $8;`,
		goal.Type, goal.Name, goal.Description, goal.TargetValue,
		goal.Unit, goal.StartDate, goal.EndDate, goal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// ListForUser returns the user's goals, optionally only the active
// (not yet completed) ones.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list_for_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Bool("active-only", activeOnly))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+`
			FROM goal
			WHERE user_id = $1 AND ($2::boolean IS FALSE OR is_completed IS FALSE)
			ORDER BY created_at DESC;`,
		userID, activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("goals [query]: %w", err)
	}
	defer rows.Close()

	return r.rows2goals(rows)
}

// ListActive is what the goal tracker uses when deriving progress from a workout.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	return r.ListForUser(ctx, userID, true)
}

// ListProgress returns the goal's progress entries in insertion order.
// Ordering by id rather than created_at matters: entries carry the workout's
// date, and a backdated workout must not reshuffle the history.
func (r *Repo) ListProgress(ctx context.Context, goalID int) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, goal_id, workout_id, value, notes, created_at
			FROM goal_progress
			WHERE goal_id = $1
			ORDER BY id;`,
		goalID,
	)
	if err != nil {
		return nil, fmt.Errorf("goal progress [query]: %w", err)
	}
	defer rows.Close()

	var entries []ProgressEntry
	for rows.Next() {
		var entry ProgressEntry
		if err := rows.Scan(
			&entry.ID, &entry.GoalID, &entry.WorkoutID,
			&entry.Value, &entry.Notes, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("goal progress [rows scan]: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal progress [rows]: %w", err)
	}

	if entries == nil {
		entries = make([]ProgressEntry, 0)
	}
	return entries, nil
}

// AppendProgress stores the progress entry and rolls it into the goal's
// current value in one transaction. Strength goals keep a running maximum,
// every other type accumulates. When the updated current value reaches the
// target, the goal is flipped to completed right here, in the same
// transaction, so no tracked goal can end up past its target but not
// completed. Returns whether this entry completed the goal.
func (r *Repo) AppendProgress(ctx context.Context, entry ProgressEntry) (_ *ProgressEntry, completed bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.append_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", entry.GoalID))
	span.SetAttributes(attribute.Int("workout.id", entry.WorkoutID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO goal_progress
				(goal_id, workout_id, value, notes, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		entry.GoalID, entry.WorkoutID, entry.Value, entry.Notes, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, false, fmt.Errorf("insert goal progress: %w", err)
	}

	var currentValue, targetValue float64
	var isCompleted bool
	err = tx.QueryRow(
		ctx,
		`UPDATE goal
			SET current_value = CASE
				WHEN goal_type = 'strength' THEN GREATEST(current_value, $2)
				ELSE current_value + $2
			END
			WHERE id = $1
			RETURNING current_value, target_value, is_completed;`,
		entry.GoalID, entry.Value,
	).Scan(&currentValue, &targetValue, &isCompleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrGoalNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("update goal current value: %w", err)
	}

	if !isCompleted && currentValue >= targetValue {
		if _, err = tx.Exec(
			ctx,
			`UPDATE goal SET is_completed = TRUE, completed_at = $2 WHERE id = $1;`,
			entry.GoalID, entry.CreatedAt,
		); err != nil {
			return nil, false, fmt.Errorf("complete goal: %w", err)
		}
		completed = true
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit tx: %w", err)
	}
	return &entry, completed, nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Type, &goal.Name, &goal.Description,
			&goal.TargetValue, &goal.CurrentValue, &goal.Unit, &goal.StartDate,
			&goal.EndDate, &goal.IsCompleted, &goal.CompletedAt, &goal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("goals [rows scan]: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goals [rows]: %w", err)
	}

	if goals == nil {
		goals = make([]Goal, 0)
	}
	return goals, nil
}
