package domain

import "time"

// Event is the listing a ticket is bought for. Only the fields the
// payment flow reads are modeled here; event discovery lives elsewhere.
type Event struct {
	ID          string
	Title       string
	Venue       string
	TicketPrice float64
	StartsAt    time.Time
	CreatedAt   time.Time
}
