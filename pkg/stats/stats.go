// Package stats computes the aggregate numbers shown on the detail and
// statistics screens.
package stats

import (
	"math"
	"time"

	"evento/pkg/event"
)

// Occupancy returns the occupied share of an event's capacity as a rounded
// percentage. Zero-capacity events count as 0% rather than dividing by zero.
func Occupancy(e event.Event) int {
	if e.Capacity <= 0 {
		return 0
	}
	occupied := e.Capacity - e.SpotsLeft
	return int(math.Round(float64(occupied) / float64(e.Capacity) * 100))
}

// Summary aggregates the whole event list
type Summary struct {
	TotalEvents      int
	ActiveEvents     int
	EndedEvents      int
	TotalCapacity    int
	TotalOccupied    int
	TotalSpotsLeft   int
	OccupancyPercent int
}

// Summarize computes a Summary for the given events at the given instant
func Summarize(events []event.Event, now time.Time) Summary {
	var s Summary
	s.TotalEvents = len(events)
	for _, e := range events {
		if e.Status(now) == event.Active {
			s.ActiveEvents++
		} else {
			s.EndedEvents++
		}
		s.TotalCapacity += e.Capacity
		s.TotalSpotsLeft += e.SpotsLeft
		s.TotalOccupied += e.Capacity - e.SpotsLeft
	}
	if s.TotalCapacity > 0 {
		s.OccupancyPercent = int(math.Round(float64(s.TotalOccupied) / float64(s.TotalCapacity) * 100))
	}
	return s
}

// RatingSummary describes the reviews of one event for display as a star row
type RatingSummary struct {
	Average    float64
	Count      int
	FullStars  int
	HalfStar   bool
	EmptyStars int
}

// SummarizeRatings averages the review ratings and breaks the average into
// stars. The half star shows when the fractional part of the average lies in
// [0.25, 0.75); outside that band only full stars show.
func SummarizeRatings(reviews []event.Review) RatingSummary {
	s := RatingSummary{Count: len(reviews), EmptyStars: 5}
	if len(reviews) == 0 {
		return s
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	s.Average = float64(total) / float64(len(reviews))

	// Star math runs on the clamped average so out-of-range ratings from the
	// server cannot produce a negative star count
	avg := math.Min(math.Max(s.Average, 0), 5)
	s.FullStars = int(math.Floor(avg))
	frac := avg - float64(s.FullStars)
	s.HalfStar = frac >= 0.25 && frac < 0.75
	s.EmptyStars = 5 - s.FullStars
	if s.HalfStar {
		s.EmptyStars--
	}
	return s
}
