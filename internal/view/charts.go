package view

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Palette is the fixed set of segment colors, applied cyclically by index.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#A28BFE"}

type Point struct {
	Label string
	Value float64
	// Pct is the bar height relative to the series maximum, 0-100.
	Pct float64
}

type Series struct {
	Points []Point
	Max    float64
}

type Segment struct {
	Label string
	Value float64
	Color string
	// Pct is this segment's share of the breakdown total, 0-100.
	Pct float64
}

// Round2 rounds half away from zero at two decimals, on the decimal value
// the float's shortest representation denotes (1.005 rounds to 1.01, which
// plain float math gets wrong).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// HourlySeries turns a snapshot's timestamp→kWh map into chart points with
// two-decimal values. Map order is randomized in Go, so entries are sorted
// by timestamp key to keep the chronological render stable.
func HourlySeries(hourly map[string]float64) Series {
	keys := make([]string, 0, len(hourly))
	for k := range hourly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := Series{Points: make([]Point, 0, len(keys))}
	for _, k := range keys {
		v := Round2(hourly[k])
		if v > s.Max {
			s.Max = v
		}
		s.Points = append(s.Points, Point{Label: hourLabel(k), Value: v})
	}
	for i := range s.Points {
		if s.Max > 0 {
			s.Points[i].Pct = s.Points[i].Value / s.Max * 100
		}
	}
	return s
}

// Breakdown turns the appliance→kWh map into pie-style segments, palette
// colors assigned cyclically by index.
func Breakdown(byAppliance map[string]float64) []Segment {
	keys := make([]string, 0, len(byAppliance))
	total := 0.0
	for k, v := range byAppliance {
		keys = append(keys, k)
		total += v
	}
	sort.Strings(keys)

	segments := make([]Segment, 0, len(keys))
	for i, k := range keys {
		seg := Segment{
			Label: k,
			Value: Round2(byAppliance[k]),
			Color: Palette[i%len(Palette)],
		}
		if total > 0 {
			seg.Pct = Round2(byAppliance[k] / total * 100)
		}
		segments = append(segments, seg)
	}
	return segments
}

// hourLabel shortens an ISO timestamp key to HH:MM (or "Jan 02" for
// date-only keys); unparseable keys are shown as-is.
func hourLabel(key string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, key); err == nil {
			return t.Format("15:04")
		}
	}
	if t, err := time.Parse("2006-01-02", key); err == nil {
		return t.Format("Jan 02")
	}
	return key
}
