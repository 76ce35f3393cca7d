package stats

import (
	"math"
	"time"

	"github.com/mkovacevic/fitstats/internal/fitness/workouts"
)

var ChangeDirection = struct {
	Positive string
	Negative string
	Neutral  string
}{
	Positive: "positive",
	Negative: "negative",
	Neutral:  "neutral",
}

type MetricChange struct {
	Metric        string  `json:"metric"`
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percentChange"`
	Direction     string  `json:"direction"`
}

type PeriodComparison struct {
	Granularity   Granularity    `json:"granularity"`
	CurrentStart  string         `json:"currentStart"`
	PreviousStart string         `json:"previousStart"`
	Changes       []MetricChange `json:"changes"`
}

// percentChange of zero previous value is pinned to 100 when anything at all
// happened in the current period, and 0 otherwise.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// changes below one percent in either direction read as noise, not a trend
func classifyChange(change float64) string {
	switch {
	case math.Abs(change) < 1:
		return ChangeDirection.Neutral
	case change > 0:
		return ChangeDirection.Positive
	default:
		return ChangeDirection.Negative
	}
}

func newMetricChange(metric string, current, previous float64) MetricChange {
	change := percentChange(current, previous)
	return MetricChange{
		Metric:        metric,
		Current:       current,
		Previous:      previous,
		PercentChange: change,
		Direction:     classifyChange(change),
	}
}

// ComparePeriods compares the calendar-aligned current period against the
// immediately previous one. The current period runs from its bucket start up
// to today, the previous one covers the whole preceding bucket.
func ComparePeriods(workoutList []workouts.Workout, granularity Granularity, today time.Time) PeriodComparison {
	currentStart := BucketStart(today, granularity)
	currentEnd := NextBucketStart(today, granularity)
	previousStart := PrevBucketStart(today, granularity)

	var current, previous []workouts.Workout
	for _, w := range workoutList {
		date := w.Date.UTC()
		switch {
		case !date.Before(currentEnd):
			// dated past the current bucket, not part of either period
		case !date.Before(currentStart):
			current = append(current, w)
		case !date.Before(previousStart):
			previous = append(previous, w)
		}
	}

	return PeriodComparison{
		Granularity:   granularity,
		CurrentStart:  currentStart.Format(bucketKeyLayout),
		PreviousStart: previousStart.Format(bucketKeyLayout),
		Changes: []MetricChange{
			newMetricChange("totalVolume", TotalVolume(current), TotalVolume(previous)),
			newMetricChange("workoutCount", float64(len(current)), float64(len(previous))),
			newMetricChange("averageDuration", AverageDuration(current), AverageDuration(previous)),
		},
	}
}
