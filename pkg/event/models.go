package event

// Event represents a single event as served by the events API
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`      // calendar day, YYYY-MM-DD
	StartTime   string   `json:"startTime"` // local time of day, HH:MM
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"imageUrl"`
	Capacity    int      `json:"capacity"`
	SpotsLeft   int      `json:"spotsLeft"`
	Categories  []string `json:"categories"`
}

// Review represents an anonymous review left for an event
type Review struct {
	ID        string `json:"id"`
	Rating    int    `json:"rating"` // 1..5 stars
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}
