package stats

import "time"

// Granularity of period bucketing for volume series and period comparisons.
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) String() string {
	return string(g)
}

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

const bucketKeyLayout = "2006-01-02"

// BucketStart returns midnight UTC of the first day of the bucket containing t.
// Week buckets start on Sunday, month buckets on the 1st.
func BucketStart(t time.Time, granularity Granularity) time.Time {
	t = t.UTC()
	switch granularity {
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -int(day.Weekday()))
	}
}

// BucketKey returns the ISO date of the bucket start. Two timestamps on the
// same date always map to the same key.
func BucketKey(t time.Time, granularity Granularity) string {
	return BucketStart(t, granularity).Format(bucketKeyLayout)
}

// NextBucketStart returns the start of the bucket immediately after the one
// containing t. Buckets are contiguous, there are no gaps between them.
func NextBucketStart(t time.Time, granularity Granularity) time.Time {
	start := BucketStart(t, granularity)
	if granularity == GranularityMonth {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 7)
}

// PrevBucketStart returns the start of the bucket immediately before the one
// containing t.
func PrevBucketStart(t time.Time, granularity Granularity) time.Time {
	start := BucketStart(t, granularity)
	if granularity == GranularityMonth {
		return start.AddDate(0, -1, 0)
	}
	return start.AddDate(0, 0, -7)
}
