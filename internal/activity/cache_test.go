package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func testCache(t *testing.T, today string) *Cache {
	t.Helper()
	return newCache(zerolog.Nop(), fixedClock(today))
}

func TestActivityForDateMemoizes(t *testing.T) {
	cache := testCache(t, "2025-02-10")

	first, err := cache.ActivityForDate("2025-02-05")
	require.NoError(t, err)
	second, err := cache.ActivityForDate("2025-02-05")
	require.NoError(t, err)

	require.Same(t, first, second)
}

func TestActivityForDateRejectsInvalidDate(t *testing.T) {
	cache := testCache(t, "2025-02-10")

	_, err := cache.ActivityForDate("not-a-date")
	require.Error(t, err)
	_, err = cache.ActivityForDate("2025-2-5")
	require.Error(t, err)
}

func TestGeneratorWeekendAndWeekdayRanges(t *testing.T) {
	cache := testCache(t, "2025-03-10")

	// 2025-03-01 is a Saturday, 2025-03-03 a Monday.
	weekend, err := cache.ActivityForDate("2025-03-01")
	require.NoError(t, err)
	require.GreaterOrEqual(t, weekend.Steps, 6000)
	require.Less(t, weekend.Steps, 8000)

	weekday, err := cache.ActivityForDate("2025-03-03")
	require.NoError(t, err)
	require.GreaterOrEqual(t, weekday.Steps, 8000)
	require.Less(t, weekday.Steps, 12000)
}

func TestGeneratorDerivedFields(t *testing.T) {
	cache := testCache(t, "2025-03-10")

	day, err := cache.ActivityForDate("2025-03-04")
	require.NoError(t, err)

	require.Equal(t, day.Steps/100, day.ActiveMinutes)
	require.Equal(t, int(float64(day.Steps)*0.04), day.Calories)
	require.InDelta(t, float64(day.Steps)*0.0007, day.Distance, 0.05+1e-9)

	require.Len(t, day.HeartRate.Data, 24)
	require.Equal(t, "00:00", day.HeartRate.Data[0].Time)
	require.Equal(t, "23:00", day.HeartRate.Data[23].Time)

	total := 0
	for hour, sample := range day.HeartRate.Data {
		require.Equal(t, fmt.Sprintf("%02d:00", hour), sample.Time)
		require.GreaterOrEqual(t, sample.Value, 70)
		require.Less(t, sample.Value, 100)
		total += sample.Value
	}
	require.Equal(t, total/24, day.HeartRate.Average)
}

func TestMetricChangeComputesPercentage(t *testing.T) {
	cache := testCache(t, "2025-02-10")
	cache.days["2025-02-04"] = &Day{Date: "2025-02-04", Steps: 100, Distance: 4.0}
	cache.days["2025-02-05"] = &Day{Date: "2025-02-05", Steps: 110, Distance: 3.0}

	require.Equal(t, "10.0", cache.MetricChange("2025-02-05", MetricSteps))
	require.Equal(t, "-25.0", cache.MetricChange("2025-02-05", MetricDistance))
}

func TestMetricChangeNeutralCases(t *testing.T) {
	cache := testCache(t, "2025-02-10")
	cache.days["2025-02-04"] = &Day{Date: "2025-02-04", Steps: 0}
	cache.days["2025-02-05"] = &Day{Date: "2025-02-05", Steps: 5000}

	// previous value is zero
	require.Equal(t, "0", cache.MetricChange("2025-02-05", MetricSteps))
	// composite metric
	require.Equal(t, "0", cache.MetricChange("2025-02-05", "heartRate"))
	// unknown metric
	require.Equal(t, "0", cache.MetricChange("2025-02-05", "vo2max"))
	// unparseable date
	require.Equal(t, "0", cache.MetricChange("someday", MetricSteps))
}

func TestMonthlyActivitiesCoversWholeMonth(t *testing.T) {
	cache := testCache(t, "2025-02-10")

	days := cache.MonthlyActivities()
	require.Len(t, days, 28) // February 2025

	require.Equal(t, "2025-02-01", days[0].Date)
	require.Equal(t, "2025-02-28", days[27].Date)
	for i := 1; i < len(days); i++ {
		require.Less(t, days[i-1].Date, days[i].Date)
	}

	// every day is now cached; a lookup returns the same record
	for _, day := range days {
		cached, err := cache.ActivityForDate(day.Date)
		require.NoError(t, err)
		require.Same(t, day, cached)
	}
}

func TestSelectedDateAlwaysHasRecord(t *testing.T) {
	cache := testCache(t, "2025-02-10")

	require.Equal(t, "2025-02-10", cache.SelectedDate())
	require.NotNil(t, cache.SelectedActivity())

	require.NoError(t, cache.SetSelectedDate("2025-01-15"))
	require.Equal(t, "2025-01-15", cache.SelectedDate())
	require.NotNil(t, cache.SelectedActivity())
	require.Equal(t, "2025-01-15", cache.SelectedActivity().Date)
}

func TestSetSelectedDateRejectsInvalidDate(t *testing.T) {
	cache := testCache(t, "2025-02-10")

	require.Error(t, cache.SetSelectedDate("15/01/2025"))
	require.Equal(t, "2025-02-10", cache.SelectedDate())
}
