package domain

import "time"

// Companion is a person accompanying the card holder to events.
type Companion struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Relation    string    `json:"relation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCompanionInput struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
	Relation    string
}

type UpdateCompanionInput struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
	Relation    string
}
