package domain

import "time"

type TicketType string

const (
	TicketTypeRegular       TicketType = "regular"
	TicketTypeAccessibility TicketType = "accessibility"
	TicketTypeCompanion     TicketType = "companion"
)

// Ticket carries the booking principal as Owner. CardID is optional: a
// ticket booked without a card is a regular ticket and bypasses the
// eligibility gate entirely.
type Ticket struct {
	ID        string     `json:"id"`
	Owner     string     `json:"owner"`
	EventID   string     `json:"event_id"`
	CardID    *string    `json:"card_id,omitempty"`
	Type      TicketType `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
}

type BookTicketInput struct {
	EventID string
	CardID  *string
}
