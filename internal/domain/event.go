package domain

import "time"

type EventType string

const (
	EventTypeMovie      EventType = "movie"
	EventTypeConcert    EventType = "concert"
	EventTypeExhibition EventType = "exhibition"
	EventTypeTheater    EventType = "theater"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeConference EventType = "conference"
)

var EventTypes = []EventType{
	EventTypeMovie,
	EventTypeConcert,
	EventTypeExhibition,
	EventTypeTheater,
	EventTypeWorkshop,
	EventTypeConference,
}

// Event is read-mostly: it is never owner-scoped and the ticketing core
// only consumes it by reference.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Website     *string   `json:"website,omitempty"`
	MaxCapacity int       `json:"max_capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventDetails struct {
	Event          Event `json:"event"`
	AvailableSpots int   `json:"available_spots"`
}

type CreateEventInput struct {
	Name        string
	Description string
	Type        EventType
	StartsAt    time.Time
	EndsAt      time.Time
	Location    string
	Organizer   string
	Website     *string
	MaxCapacity int
}

func ValidEventType(t EventType) bool {
	for _, et := range EventTypes {
		if t == et {
			return true
		}
	}
	return false
}
