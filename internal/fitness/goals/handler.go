package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, id int) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id int) error
	ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]Goal, error)
	ListProgress(ctx context.Context, goalID int) ([]ProgressEntry, error)
	AppendProgress(ctx context.Context, entry ProgressEntry) (*ProgressEntry, bool, error)
}

type DeleteGoalResponse struct {
	DeletedID int `json:"deletedId"`
}

type AddProgressResponse struct {
	Entry     *ProgressEntry `json:"entry"`
	Completed bool           `json:"completed"`
}

type UpdateGoalResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Errorf("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.UserID == uuid.Nil {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if goal.Name == "" {
		http.Error(w, "error, goal name empty", http.StatusBadRequest)
		return
	}
	if !goal.Type.IsValid() {
		http.Error(w, "error, invalid goal type", http.StatusBadRequest)
		return
	}
	if goal.TargetValue <= 0 {
		http.Error(w, "error, target value must be positive", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, goal)
	if err != nil {
		log.Errorf("add goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Errorf("update goal, unmarshal json params: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}

	if goal.ID <= 0 {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}
	if !goal.Type.IsValid() {
		http.Error(w, "error, invalid goal type", http.StatusBadRequest)
		return
	}

	err := handler.repo.Update(ctx, &goal)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update goal: %s", err)
		http.Error(w, "update goal failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(UpdateGoalResponse{UpdatedID: goal.ID})
	if err != nil {
		log.Errorf("marshal update goal response: %s", err)
		http.Error(w, "update goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get goal: %s", err)
		http.Error(w, "get goal failed", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("marshal goal: %s", err)
		http.Error(w, "get goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}

	err = handler.repo.Delete(ctx, id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete goal: %s", err)
		http.Error(w, "delete goal failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(DeleteGoalResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete goal response: %s", err)
		http.Error(w, "delete goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}

func (handler *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list_for_user")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	goals, err := handler.repo.ListForUser(ctx, userID, activeOnly)
	if err != nil {
		log.Errorf("list goals: %s", err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.progress")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.ListProgress(ctx, id)
	if err != nil {
		log.Errorf("list goal progress: %s", err)
		http.Error(w, "list goal progress failed", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal goal progress: %s", err)
		http.Error(w, "list goal progress failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

// HandleAddProgress records a manual progress entry for goals the workout
// tracker cannot derive on its own, weight and custom goals mostly.
func (handler *Handler) HandleAddProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add_progress")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	goalID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, goal id invalid", http.StatusBadRequest)
		return
	}

	var entry ProgressEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("add goal progress, unmarshal json params: %s", err)
		http.Error(w, "add goal progress failed", http.StatusBadRequest)
		return
	}
	entry.GoalID = goalID

	if entry.Value <= 0 {
		http.Error(w, "error, progress value must be positive", http.StatusBadRequest)
		return
	}

	added, completed, err := handler.repo.AppendProgress(ctx, entry)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("add goal progress: %s", err)
		http.Error(w, "add goal progress failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(AddProgressResponse{Entry: added, Completed: completed})
	if err != nil {
		log.Errorf("marshal add goal progress response: %s", err)
		http.Error(w, "add goal progress failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusCreated)
}
