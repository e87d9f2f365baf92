package dto

import (
	"time"

	"github.com/accesspass/accesspass/internal/domain"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CardResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Status           string  `json:"status"`
	Number           string  `json:"number"`
	IssuingAuthority string  `json:"issuing_authority"`
	ExpiryDate       string  `json:"expiry_date"`
	DocumentURL      *string `json:"document_url,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CompanionResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Relation    string  `json:"relation"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TicketResponse struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	CardID    *string `json:"card_id,omitempty"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"created_at"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	Location    string  `json:"location"`
	Organizer   string  `json:"organizer"`
	Website     *string `json:"website,omitempty"`
	MaxCapacity int     `json:"max_capacity"`
	CreatedAt   string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse `json:"event"`
	AvailableSpots int           `json:"available_spots"`
}

// ErrorResponse carries a human message plus a stable machine code so the
// client can render differentiated guidance per failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCardResponse(c *domain.DisabilityCard) CardResponse {
	return CardResponse{
		ID:               c.ID,
		Type:             string(c.Type),
		Status:           string(c.Status),
		Number:           c.Number,
		IssuingAuthority: c.IssuingAuthority,
		ExpiryDate:       c.ExpiryDate.Format(time.RFC3339),
		DocumentURL:      c.DocumentURL,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCompanionResponse(c *domain.Companion) CompanionResponse {
	return CompanionResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Relation:    c.Relation,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		CardID:    t.CardID,
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Type:        string(e.Type),
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		EndsAt:      e.EndsAt.Format(time.RFC3339),
		Location:    e.Location,
		Organizer:   e.Organizer,
		Website:     e.Website,
		MaxCapacity: e.MaxCapacity,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AvailableSpots: d.AvailableSpots,
	}
}
