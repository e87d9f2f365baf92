package dto

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateCardRequest deliberately has no owner field: the owner is always
// the authenticated principal, never client input.
type CreateCardRequest struct {
	Type             string  `json:"type" binding:"required"`
	Number           string  `json:"number" binding:"required"`
	IssuingAuthority string  `json:"issuing_authority" binding:"required"`
	ExpiryDate       string  `json:"expiry_date" binding:"required"`
	DocumentURL      *string `json:"document_url"`
}

type UpdateCardRequest struct {
	Type             string  `json:"type" binding:"required"`
	Number           string  `json:"number" binding:"required"`
	IssuingAuthority string  `json:"issuing_authority" binding:"required"`
	ExpiryDate       string  `json:"expiry_date" binding:"required"`
	DocumentURL      *string `json:"document_url"`
}

type CreateCompanionRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	Relation    string  `json:"relation" binding:"required"`
}

type UpdateCompanionRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	Relation    string  `json:"relation" binding:"required"`
}

type BookTicketRequest struct {
	EventID string  `json:"event_id" binding:"required,uuid"`
	CardID  *string `json:"card_id" binding:"omitempty,uuid"`
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	EndsAt      string  `json:"ends_at"`
	Location    string  `json:"location" binding:"required"`
	Organizer   string  `json:"organizer" binding:"required"`
	Website     *string `json:"website"`
	MaxCapacity int     `json:"max_capacity" binding:"required,gt=0"`
}
