package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exerciseType ExerciseType) (err error)
	Get(ctx context.Context, id string) (_ ExerciseType, err error)
	List(ctx context.Context, params ListParams) (_ []ExerciseType, err error)
	Update(ctx context.Context, exerciseType ExerciseType) (err error)
	Delete(ctx context.Context, id string) (err error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("new exercise type, unmarshal json params: %s", err)
		http.Error(w, "add exercise type failed", http.StatusBadRequest)
		return
	}

	if exerciseType.ID == "" || exerciseType.Name == "" || exerciseType.MuscleGroup == "" {
		http.Error(w, "error, exercise id, name, and muscle group are required", http.StatusBadRequest)
		return
	}

	exerciseType.MuscleGroup = strings.ToLower(exerciseType.MuscleGroup)
	if !slices.Contains(MuscleGroups, exerciseType.MuscleGroup) {
		http.Error(w, "error, invalid muscle group", http.StatusBadRequest)
		return
	}

	if exerciseType.Category == "" {
		exerciseType.Category = Category.Strength
	}
	exerciseType.Category = strings.ToLower(exerciseType.Category)
	if !slices.Contains(Categories, exerciseType.Category) {
		http.Error(w, "error, invalid category", http.StatusBadRequest)
		return
	}

	if exerciseType.CreatedAt.IsZero() {
		exerciseType.CreatedAt = time.Now()
	}

	err := handler.repo.Add(ctx, exerciseType)
	if errors.Is(err, ErrExerciseTypeExists) {
		http.Error(w, "exercise type already exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("add exercise type: %s", err)
		http.Error(w, "add exercise type failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise type added: %+v", exerciseType)
	w.WriteHeader(http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exerciseTypes, err := handler.repo.List(ctx, ListParams{
		MuscleGroup: r.URL.Query().Get("muscleGroup"),
		Category:    r.URL.Query().Get("category"),
	})
	if err != nil {
		log.Errorf("list exercise types: %s", err)
		http.Error(w, "list exercise types failed", http.StatusInternalServerError)
		return
	}

	exTypesJson, err := json.Marshal(exerciseTypes)
	if err != nil {
		log.Errorf("marshal exercise types: %s", err)
		http.Error(w, "list exercise types failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exTypesJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	exerciseType, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseTypeNotFound) {
		http.Error(w, "exercise type not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get exercise type: %s", err)
		http.Error(w, "get exercise type failed", http.StatusInternalServerError)
		return
	}

	exTypeJson, err := json.Marshal(exerciseType)
	if err != nil {
		log.Errorf("marshal exercise type: %s", err)
		http.Error(w, "get exercise type failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exTypeJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("update exercise type, unmarshal json params: %s", err)
		http.Error(w, "update exercise type failed", http.StatusBadRequest)
		return
	}

	if exerciseType.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	err := handler.repo.Update(ctx, exerciseType)
	if errors.Is(err, ErrExerciseTypeNotFound) {
		http.Error(w, "exercise type not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update exercise type: %s", err)
		http.Error(w, "update exercise type failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	err := handler.repo.Delete(ctx, id)
	if errors.Is(err, ErrExerciseTypeNotFound) {
		http.Error(w, "exercise type not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete exercise type: %s", err)
		http.Error(w, "delete exercise type failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
