package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkovacevic/fitstats/internal/telemetry/tracing"
	"github.com/mkovacevic/fitstats/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultVolumeWindow = 12

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return userID, true
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	summary, err := handler.analyzer.Summary(ctx, userID)
	if err != nil {
		log.Errorf("get stats summary: %s", err)
		http.Error(w, "get stats summary failed", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal stats summary: %s", err)
		http.Error(w, "get stats summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.volume")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	granularity := Granularity(mux.Vars(r)["granularity"])
	if !granularity.IsValid() {
		http.Error(w, "error, invalid granularity", http.StatusBadRequest)
		return
	}

	window := defaultVolumeWindow
	if windowParam := r.URL.Query().Get("window"); windowParam != "" {
		var err error
		if window, err = strconv.Atoi(windowParam); err != nil || window < 1 {
			http.Error(w, "error, invalid window", http.StatusBadRequest)
			return
		}
	}

	series, err := handler.analyzer.VolumeSeries(ctx, userID, granularity, window)
	if err != nil {
		log.Errorf("get volume series: %s", err)
		http.Error(w, "get volume series failed", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal volume series: %s", err)
		http.Error(w, "get volume series failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, seriesJson)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	records, err := handler.analyzer.Records(ctx, userID)
	if err != nil {
		log.Errorf("get personal records: %s", err)
		http.Error(w, "get personal records failed", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal personal records: %s", err)
		http.Error(w, "get personal records failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streak")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	streak, err := handler.analyzer.CurrentStreak(ctx, userID)
	if err != nil {
		log.Errorf("get streak: %s", err)
		http.Error(w, "get streak failed", http.StatusInternalServerError)
		return
	}

	streakJson, err := json.Marshal(streak)
	if err != nil {
		log.Errorf("marshal streak: %s", err)
		http.Error(w, "get streak failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, streakJson)
}

func (handler *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.comparison")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	granularity := Granularity(mux.Vars(r)["granularity"])
	if !granularity.IsValid() {
		http.Error(w, "error, invalid granularity", http.StatusBadRequest)
		return
	}

	comparison, err := handler.analyzer.Comparison(ctx, userID, granularity)
	if err != nil {
		log.Errorf("get period comparison: %s", err)
		http.Error(w, "get period comparison failed", http.StatusInternalServerError)
		return
	}

	comparisonJson, err := json.Marshal(comparison)
	if err != nil {
		log.Errorf("marshal period comparison: %s", err)
		http.Error(w, "get period comparison failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, comparisonJson)
}
