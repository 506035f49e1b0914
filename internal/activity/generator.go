package activity

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// generate synthesizes one day of metrics. The shape is a pure function of the
// date (weekends are quieter than weekdays) but the magnitudes are randomized,
// so only the cache keeps repeated lookups stable.
func generate(date string, day time.Time) *Day {
	weekday := day.Weekday()
	isWeekend := weekday == time.Sunday || weekday == time.Saturday

	base, variance := 8000, 4000
	if isWeekend {
		base, variance = 6000, 2000
	}

	steps := int(rand.Float64()*float64(variance)) + base
	activeMinutes := steps / 100
	distance := math.Round(float64(steps)*0.0007*10) / 10
	calories := int(float64(steps) * 0.04)

	samples := make([]HeartRateSample, 24)
	total := 0
	for hour := 0; hour < 24; hour++ {
		rate := 70
		if hour >= 6 && hour <= 22 {
			switch {
			case hour >= 7 && hour <= 9:
				rate = 90
			case hour >= 17 && hour <= 19:
				rate = 85
			default:
				rate = 75
			}
		}
		value := int(rand.Float64()*10) + rate
		samples[hour] = HeartRateSample{Time: fmt.Sprintf("%02d:00", hour), Value: value}
		total += value
	}

	return &Day{
		Date:          date,
		Steps:         steps,
		ActiveMinutes: activeMinutes,
		Distance:      distance,
		Calories:      calories,
		HeartRate: HeartRate{
			Average: total / len(samples),
			Data:    samples,
		},
	}
}
