// Package mockdata holds the fixed and generated figures shown by the dashboard.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultDays is the length of the revenue series.
const DefaultDays = 14

// PerformanceSample is one day of the revenue chart.
type PerformanceSample struct {
	Day     string
	Revenue float64
	Users   float64
}

// NewSeries generates an upward-trending series of days samples. A zero seed
// draws the seed from the wall clock.
func NewSeries(seed uint64, days int) []PerformanceSample {
	if days <= 0 {
		days = DefaultDays
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	series := make([]PerformanceSample, days)
	for i := range series {
		series[i] = PerformanceSample{
			Day:     fmt.Sprintf("Day %d", i+1),
			Revenue: 1200 + rng.Float64()*800 + float64(i*100),
			Users:   500 + rng.Float64()*200 + float64(i*50),
		}
	}
	return series
}

// Revenues extracts the revenue column of series.
func Revenues(series []PerformanceSample) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.Revenue
	}
	return out
}
