// Package activity owns the per-day activity records and their derived metrics.
package activity

// HeartRateSample is one hourly reading.
type HeartRateSample struct {
	Time  string `json:"time"`
	Value int    `json:"value"`
}

// HeartRate aggregates the hourly readings for one day.
type HeartRate struct {
	Average int               `json:"average"`
	Data    []HeartRateSample `json:"data"`
}

// Day holds the synthetic metrics for a single calendar date.
type Day struct {
	Date          string    `json:"date"`
	Steps         int       `json:"steps"`
	ActiveMinutes int       `json:"activeMinutes"`
	Distance      float64   `json:"distance"`
	Calories      int       `json:"calories"`
	HeartRate     HeartRate `json:"heartRate"`
}

// Metric names accepted by Cache.MetricChange. The heart rate is a composite
// and deliberately not listed.
const (
	MetricSteps         = "steps"
	MetricActiveMinutes = "activeMinutes"
	MetricDistance      = "distance"
	MetricCalories      = "calories"
)
