package event

import (
	"errors"
	"time"
)

// Validation errors surfaced by the create/edit forms
var (
	ErrMissingFields   = errors.New("title, date, start time, end time and location are required")
	ErrBadDate         = errors.New("invalid date: use YYYY-MM-DD")
	ErrBadTime         = errors.New("invalid time: use HH:MM between 00:00 and 23:59")
	ErrTimeOrder       = errors.New("start time must be before end time")
	ErrPastDate        = errors.New("date cannot be before today")
	ErrMissingImage    = errors.New("an image is required")
	ErrNegativeNumbers = errors.New("capacity and spots left cannot be negative")
	ErrBadNumber       = errors.New("capacity must be a whole number")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Validate checks the fields the edit form collects. It does not enforce the
// capacity/spotsLeft relationship, which the server owns.
func (e Event) Validate() error {
	if e.Title == "" || e.Date == "" || e.StartTime == "" || e.EndTime == "" || e.Location == "" {
		return ErrMissingFields
	}
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return ErrBadDate
	}
	start, err := time.Parse(timeLayout, e.StartTime)
	if err != nil {
		return ErrBadTime
	}
	end, err := time.Parse(timeLayout, e.EndTime)
	if err != nil {
		return ErrBadTime
	}
	if !start.Before(end) {
		return ErrTimeOrder
	}
	if e.Capacity < 0 || e.SpotsLeft < 0 {
		return ErrNegativeNumbers
	}
	return nil
}

// ValidateNew applies the stricter rules for events being created: everything
// Validate checks, plus the date may not lie in the past and an image must be
// provided. today is the current day in the caller's calendar.
func (e Event) ValidateNew(today time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Date < today.Format(dateLayout) {
		return ErrPastDate
	}
	if e.ImageURL == "" {
		return ErrMissingImage
	}
	return nil
}
