package activity

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"example.com/fitdash/internal/observability"
)

// DateLayout is the calendar-date key format used throughout the cache.
const DateLayout = "2006-01-02"

// Cache memoizes generated days and tracks the selected-date cursor. Once a
// date is generated its record never changes within a session; later lookups
// return the first call's value.
type Cache struct {
	mu           sync.RWMutex
	days         map[string]*Day
	selectedDate string
	now          func() time.Time
	log          zerolog.Logger
}

// NewCache constructs a cache with the cursor on today, eagerly generated so
// the cursor always has a backing record.
func NewCache(log zerolog.Logger) *Cache {
	return newCache(log, time.Now)
}

func newCache(log zerolog.Logger, now func() time.Time) *Cache {
	c := &Cache{
		days: make(map[string]*Day),
		now:  now,
		log:  log.With().Str("component", "activity").Logger(),
	}
	today := now().Format(DateLayout)
	c.dayFor(today, now())
	c.selectedDate = today
	return c
}

// ActivityForDate returns the record for date, generating it on the first
// access. Repeated calls for the same date return the identical record.
func (c *Cache) ActivityForDate(date string) (*Day, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return c.dayFor(date, parsed), nil
}

func (c *Cache) dayFor(date string, parsed time.Time) *Day {
	c.mu.RLock()
	if day, ok := c.days[date]; ok {
		c.mu.RUnlock()
		observability.RecordActivityCacheHit()
		return day
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if day, ok := c.days[date]; ok {
		observability.RecordActivityCacheHit()
		return day
	}
	day := generate(date, parsed)
	c.days[date] = day
	observability.RecordActivityGenerated()
	c.log.Debug().Str("date", date).Int("steps", day.Steps).Msg("generated activity record")
	return day
}

// MetricChange reports the day-over-day percentage change for one metric as a
// string with one decimal place. Missing data, the heart-rate composite, a
// zero previous value and non-finite results all collapse to "0".
func (c *Cache) MetricChange(date, metric string) string {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return "0"
	}

	current := c.dayFor(date, parsed)
	prev := parsed.AddDate(0, 0, -1)
	previous := c.dayFor(prev.Format(DateLayout), prev)

	cur, ok := numericMetric(current, metric)
	if !ok {
		return "0"
	}
	before, ok := numericMetric(previous, metric)
	if !ok || before == 0 {
		return "0"
	}

	change := (cur - before) / before * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return "0"
	}
	return strconv.FormatFloat(change, 'f', 1, 64)
}

// MonthlyActivities returns one record per calendar day of the month
// containing now, in ascending date order, generating any missing days.
func (c *Cache) MonthlyActivities() []*Day {
	now := c.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	out := make([]*Day, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		day := first.AddDate(0, 0, i)
		out = append(out, c.dayFor(day.Format(DateLayout), day))
	}
	return out
}

// SetSelectedDate moves the cursor, generating the date's record first so the
// cursor never points at a missing entry.
func (c *Cache) SetSelectedDate(date string) error {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	c.dayFor(date, parsed)

	c.mu.Lock()
	c.selectedDate = date
	c.mu.Unlock()
	return nil
}

// SelectedDate returns the cursor.
func (c *Cache) SelectedDate() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedDate
}

// SelectedActivity returns the record under the cursor.
func (c *Cache) SelectedActivity() *Day {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.days[c.selectedDate]
}

func numericMetric(day *Day, metric string) (float64, bool) {
	switch metric {
	case MetricSteps:
		return float64(day.Steps), true
	case MetricActiveMinutes:
		return float64(day.ActiveMinutes), true
	case MetricDistance:
		return day.Distance, true
	case MetricCalories:
		return float64(day.Calories), true
	default:
		return 0, false
	}
}
