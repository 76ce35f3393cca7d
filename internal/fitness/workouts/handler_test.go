package workouts_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/workouts"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	userID := uuid.New()
	workout := workouts.Workout{
		UserID:          userID,
		Date:            time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 55,
		Sets: []workouts.Set{
			{ExerciseID: "bench-press", Reps: 8, WeightKilos: 80},
			{ExerciseID: "squat", Reps: 5, WeightKilos: 100},
		},
	}
	workoutJson, err := json.Marshal(workout)
	require.NoError(t, err)

	added := workout
	added.ID = 11
	serviceMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(&added, nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewBuffer(workoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAdd(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var addedResp workouts.Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &addedResp))
	assert.Equal(t, 11, addedResp.ID)
	assert.Equal(t, userID, addedResp.UserID)
}

func TestHandler_HandleAdd_UnknownExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	workout := workouts.Workout{
		UserID: uuid.New(),
		Date:   time.Now(),
		Sets:   []workouts.Set{{ExerciseID: "no-such-exercise", Reps: 5, WeightKilos: 50}},
	}
	workoutJson, err := json.Marshal(workout)
	require.NoError(t, err)

	serviceMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert set: %w", workouts.ErrUnknownExercise))

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewBuffer(workoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAdd(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleAdd_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	workoutJson, err := json.Marshal(workouts.Workout{Date: time.Now()})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/workouts", bytes.NewBuffer(workoutJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAdd(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	workout := &workouts.Workout{ID: 5, UserID: uuid.New()}
	repoMock.EXPECT().Get(gomock.Any(), 5).Return(workout, nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts/5", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	handler.HandleGet(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var gotten workouts.Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &gotten))
	assert.Equal(t, 5, gotten.ID)
}

func TestHandler_HandleGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	repoMock.EXPECT().Get(gomock.Any(), 5).Return(nil, workouts.ErrWorkoutNotFound)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/workouts/5", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	handler.HandleGet(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	userID := uuid.New()
	listed := []workouts.Workout{
		{ID: 2, UserID: userID},
		{ID: 1, UserID: userID},
	}
	repoMock.EXPECT().
		List(gomock.Any(), workouts.ListParams{
			WorkoutParams: workouts.WorkoutParams{UserID: userID},
			Page:          1,
			Size:          10,
		}).
		Return(listed, 2, nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", fmt.Sprintf("/workouts/list/page/1/size/10?userId=%s", userID), nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"page": "1", "size": "10"})

	handler.HandleList(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var listResp workouts.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listResp))
	assert.Equal(t, 2, listResp.Total)
	assert.Len(t, listResp.Workouts, 2)
}

func TestHandler_HandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockworkoutsService(ctrl)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := workouts.NewHandler(serviceMock, repoMock)

	userID := uuid.New()
	serviceMock.EXPECT().Delete(gomock.Any(), 9, userID).Return(nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", fmt.Sprintf("/workouts/9?userId=%s", userID), nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "9"})

	handler.HandleDelete(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var deleteResp workouts.DeleteWorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleteResp))
	assert.Equal(t, 9, deleteResp.DeletedID)
}
