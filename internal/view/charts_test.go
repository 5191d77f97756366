package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	// 1.005 must round up, which naive float math gets wrong
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 1.0, Round2(1.004))
	assert.Equal(t, 0.5, Round2(0.5))
	assert.Equal(t, 2.35, Round2(2.345))
	assert.Equal(t, 0.0, Round2(0))
}

func TestHourlySeries(t *testing.T) {
	s := HourlySeries(map[string]float64{
		"2024-01-01T02:00:00Z": 2.0,
		"2024-01-01T00:00:00Z": 1.005,
		"2024-01-01T01:00:00Z": 0.25,
	})

	if assert.Len(t, s.Points, 3) {
		// chronological by timestamp key
		assert.Equal(t, "00:00", s.Points[0].Label)
		assert.Equal(t, "01:00", s.Points[1].Label)
		assert.Equal(t, "02:00", s.Points[2].Label)

		assert.Equal(t, 1.01, s.Points[0].Value)
		assert.Equal(t, 0.25, s.Points[1].Value)
		assert.Equal(t, 2.0, s.Points[2].Value)
	}

	assert.Equal(t, 2.0, s.Max)
	assert.Equal(t, 100.0, s.Points[2].Pct)
}

func TestHourlySeriesEmpty(t *testing.T) {
	s := HourlySeries(nil)
	assert.Empty(t, s.Points)
	assert.Equal(t, 0.0, s.Max)
}

func TestHourlySeriesDateKeys(t *testing.T) {
	s := HourlySeries(map[string]float64{"2025-11-04": 3.2, "not-a-date": 1.0})
	assert.Equal(t, "Nov 04", s.Points[0].Label)
	assert.Equal(t, "not-a-date", s.Points[1].Label)
}

func TestBreakdownPaletteCycles(t *testing.T) {
	data := map[string]float64{
		"AC": 45.0, "Fridge": 30.5, "Geyser": 10.0, "Lights": 5.0,
		"TV": 4.0, "Washer": 24.5, "Fan": 1.0,
	}
	segs := Breakdown(data)
	assert.Len(t, segs, len(data))

	for i, seg := range segs {
		assert.Equal(t, Palette[i%len(Palette)], seg.Color)
	}
	// more segments than colors wraps around
	assert.Equal(t, segs[0].Color, segs[len(Palette)].Color)
}

func TestBreakdownShares(t *testing.T) {
	segs := Breakdown(map[string]float64{"A": 75, "B": 25})
	assert.Equal(t, 75.0, segs[0].Pct)
	assert.Equal(t, 25.0, segs[1].Pct)

	assert.Empty(t, Breakdown(nil))
}
