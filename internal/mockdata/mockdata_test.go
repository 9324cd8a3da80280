package mockdata

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries_DefaultLength(t *testing.T) {
	assert.Len(t, NewSeries(1, 0), DefaultDays)
	assert.Len(t, NewSeries(1, -3), DefaultDays)
	assert.Len(t, NewSeries(1, 30), 30)
}

func TestNewSeries_Bounds(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		series := NewSeries(seed, DefaultDays)
		for i, s := range series {
			assert.Equal(t, fmt.Sprintf("Day %d", i+1), s.Day)

			minRev := 1200 + float64(i*100)
			assert.GreaterOrEqual(t, s.Revenue, minRev)
			assert.Less(t, s.Revenue, minRev+800)

			minUsers := 500 + float64(i*50)
			assert.GreaterOrEqual(t, s.Users, minUsers)
			assert.Less(t, s.Users, minUsers+200)
		}
	}
}

func TestNewSeries_TrendsUpward(t *testing.T) {
	series := NewSeries(5, DefaultDays)
	// Day 14's floor (2500) sits above day 1's ceiling (2000).
	first, last := series[0], series[len(series)-1]
	assert.Greater(t, last.Revenue, first.Revenue)
	assert.Greater(t, last.Users, first.Users)
}

func TestNewSeries_Deterministic(t *testing.T) {
	assert.Equal(t, NewSeries(11, 14), NewSeries(11, 14))
	assert.NotEqual(t, NewSeries(11, 14), NewSeries(12, 14))
}

func TestRevenues(t *testing.T) {
	series := NewSeries(3, 4)
	got := Revenues(series)
	require.Len(t, got, 4)
	for i := range series {
		assert.Equal(t, series[i].Revenue, got[i])
	}
	assert.Empty(t, Revenues(nil))
}

func TestServices(t *testing.T) {
	got := Services()
	require.Len(t, got, 4)
	assert.Equal(t, "Auth Server (OAuth2)", got[0].Name)
	assert.Equal(t, 67, got[2].Load)

	idle := 0
	for _, s := range got {
		if s.Idle() {
			idle++
			assert.Equal(t, "Notification Engine", s.Name)
		}
	}
	assert.Equal(t, 1, idle)

	got[0].Name = "changed"
	assert.Equal(t, "Auth Server (OAuth2)", Services()[0].Name)
}
