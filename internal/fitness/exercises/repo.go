package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseTypeNotFound = errors.New("exercise type not found")
	ErrExerciseTypeExists   = errors.New("exercise type already exists")
)

type ListParams struct {
	MuscleGroup string
	Category    string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exerciseType ExerciseType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", exerciseType.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_type
				(id, name, muscle_group, category, description, created_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		exerciseType.ID, exerciseType.Name, exerciseType.MuscleGroup,
		exerciseType.Category, exerciseType.Description, exerciseType.CreatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		return ErrExerciseTypeExists
	}
	if err != nil {
		return fmt.Errorf("exercise type [insert]: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", id))

	var exerciseType ExerciseType
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, muscle_group, category, description, created_at
			FROM exercise_type
			WHERE id = $1
		`,
		id,
	).Scan(
		&exerciseType.ID,
		&exerciseType.Name,
		&exerciseType.MuscleGroup,
		&exerciseType.Category,
		&exerciseType.Description,
		&exerciseType.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return ExerciseType{}, ErrExerciseTypeNotFound
	}
	if err != nil {
		return ExerciseType{}, fmt.Errorf("exercise type [query row]: %w", err)
	}

	return exerciseType, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.MuscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", params.MuscleGroup))
	}
	if params.Category != "" {
		span.SetAttributes(attribute.String("params.category", params.Category))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, muscle_group, category, description, created_at
			FROM exercise_type
			WHERE ($1::text = '' OR muscle_group = $1) AND ($2::text = '' OR category = $2)
			ORDER BY name
		`,
		params.MuscleGroup,
		params.Category,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	return r.rows2exerciseTypes(rows)
}

func (r *Repo) Update(ctx context.Context, exerciseType ExerciseType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", exerciseType.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_type SET name = $1, muscle_group = $2, category = $3, description = $4 WHERE id = $5;`,
		exerciseType.Name, exerciseType.MuscleGroup, exerciseType.Category, exerciseType.Description, exerciseType.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseTypeNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_type WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseTypeNotFound
	}
	return nil
}

func (r *Repo) rows2exerciseTypes(rows pgx.Rows) ([]ExerciseType, error) {
	var exerciseTypes []ExerciseType
	for rows.Next() {
		var et ExerciseType
		if err := rows.Scan(
			&et.ID,
			&et.Name,
			&et.MuscleGroup,
			&et.Category,
			&et.Description,
			&et.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows]: %w", err)
	}

	if exerciseTypes == nil {
		exerciseTypes = make([]ExerciseType, 0)
	}
	return exerciseTypes, nil
}
