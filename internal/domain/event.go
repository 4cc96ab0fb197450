package domain

import "time"

// Event is a priced item attributed to the user that created it.
type Event struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Creator     string
	CreatedAt   time.Time
}
