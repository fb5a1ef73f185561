package event

import "time"

// ActivityStatus classifies an event relative to a reference instant
type ActivityStatus int

const (
	Active ActivityStatus = iota // end instant strictly after the reference
	Ended                        // end instant at or before the reference
)

// String returns a human readable name for the status
func (s ActivityStatus) String() string {
	if s == Active {
		return "active"
	}
	return "ended"
}

// dateTimeLayout combines the Date and EndTime fields of an Event
const dateTimeLayout = "2006-01-02 15:04"

// Status classifies the event as Active or Ended relative to now.
// The end instant is built from Date and EndTime in now's location, so
// classification is deterministic for a given reference instant. An event
// whose date or end time cannot be parsed is treated as Ended rather than
// failing the whole derivation.
func (e Event) Status(now time.Time) ActivityStatus {
	end, err := time.ParseInLocation(dateTimeLayout, e.Date+" "+e.EndTime, now.Location())
	if err != nil {
		return Ended
	}
	if end.After(now) {
		return Active
	}
	return Ended
}

// EndsAt returns the event's end instant in the given location, or an error
// when the date/time fields are malformed.
func (e Event) EndsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, e.Date+" "+e.EndTime, loc)
}
