package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id int, userID uuid.UUID) error
}

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateWorkoutResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	service workoutsService
	repo    workoutsRepo
}

func NewHandler(service workoutsService, repo workoutsRepo) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.UserID == uuid.Nil {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	for _, set := range workout.Sets {
		if set.ExerciseID == "" {
			http.Error(w, "error, set exercise id empty", http.StatusBadRequest)
			return
		}
		if set.Reps < 0 || set.WeightKilos < 0 {
			http.Error(w, "error, negative set values", http.StatusBadRequest)
			return
		}
	}

	added, err := handler.service.Add(ctx, workout)
	if errors.Is(err, ErrUnknownExercise) {
		http.Error(w, "error, unknown exercise type", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if workout.ID <= 0 {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	err := handler.service.Update(ctx, &workout)
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrUnknownExercise):
		http.Error(w, "error, unknown exercise type", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("update workout: %s", err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(UpdateWorkoutResponse{UpdatedID: workout.ID})
	if err != nil {
		log.Errorf("marshal update workout response: %s", err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	err = handler.service.Delete(ctx, id, userID)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete workout: %s", err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(DeleteWorkoutResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete workout response: %s", err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workouts, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	workouts, total, err := handler.repo.List(ctx, ListParams{
		WorkoutParams: WorkoutParams{UserID: userID},
		Page:          page,
		Size:          size,
	})
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal list workouts response: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}
