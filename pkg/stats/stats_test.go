package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"evento/pkg/event"
)

func TestOccupancy(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		spotsLeft int
		want      int
	}{
		{"empty event", 100, 100, 0},
		{"full event", 100, 0, 100},
		{"half full", 100, 50, 50},
		{"rounds up", 3, 1, 67},
		{"rounds down", 3, 2, 33},
		{"zero capacity", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := event.Event{Capacity: tt.capacity, SpotsLeft: tt.spotsLeft}
			assert.Equal(t, tt.want, Occupancy(e))
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)
	events := []event.Event{
		{Date: "2025-01-10", EndTime: "20:00", Capacity: 100, SpotsLeft: 40},
		{Date: "2025-01-10", EndTime: "18:00", Capacity: 50, SpotsLeft: 0},
		{Date: "2025-01-11", EndTime: "09:00", Capacity: 50, SpotsLeft: 50},
	}

	s := Summarize(events, now)
	assert.Equal(t, 3, s.TotalEvents)
	assert.Equal(t, 2, s.ActiveEvents)
	assert.Equal(t, 1, s.EndedEvents)
	assert.Equal(t, 200, s.TotalCapacity)
	assert.Equal(t, 110, s.TotalOccupied)
	assert.Equal(t, 90, s.TotalSpotsLeft)
	assert.Equal(t, 55, s.OccupancyPercent)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	assert.Zero(t, s.TotalEvents)
	assert.Zero(t, s.OccupancyPercent)
}

func TestSummarizeRatings(t *testing.T) {
	reviews := func(ratings ...int) []event.Review {
		out := make([]event.Review, len(ratings))
		for i, r := range ratings {
			out[i] = event.Review{Rating: r}
		}
		return out
	}

	tests := []struct {
		name    string
		ratings []event.Review
		average float64
		full    int
		half    bool
		empty   int
	}{
		{"no reviews", nil, 0, 0, false, 5},
		{"single five", reviews(5), 5, 5, false, 0},
		{"plain average", reviews(4, 2), 3, 3, false, 2},
		{"half star shows at .5", reviews(4, 3), 3.5, 3, true, 1},
		{"half star shows at .25", reviews(1, 1, 1, 2), 1.25, 1, true, 3},
		{"no half star below .25", reviews(1, 1, 1, 1, 2), 1.2, 1, false, 4},
		{"no half star at .75", reviews(1, 2, 2, 2), 1.75, 1, false, 4},
		{"out of range ratings clamp high", reviews(7), 7, 5, false, 0},
		{"out of range ratings clamp low", reviews(-3), -3, 0, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeRatings(tt.ratings)
			assert.InDelta(t, tt.average, s.Average, 0.001)
			assert.Equal(t, tt.full, s.FullStars)
			assert.Equal(t, tt.half, s.HalfStar)
			assert.Equal(t, tt.empty, s.EmptyStars)
			assert.Equal(t, len(tt.ratings), s.Count)
		})
	}
}
