package domain

import "time"

type CardType string

const (
	CardTypeMobility       CardType = "mobility"
	CardTypeVisual         CardType = "visual"
	CardTypeHearing        CardType = "hearing"
	CardTypeCognitive      CardType = "cognitive"
	CardTypeChronicIllness CardType = "chronic_illness"
	CardTypeMentalHealth   CardType = "mental_health"
	CardTypeTemporary      CardType = "temporary"
)

var CardTypes = []CardType{
	CardTypeMobility,
	CardTypeVisual,
	CardTypeHearing,
	CardTypeCognitive,
	CardTypeChronicIllness,
	CardTypeMentalHealth,
	CardTypeTemporary,
}

type CardStatus string

const (
	CardStatusPending   CardStatus = "pending"
	CardStatusActive    CardStatus = "active"
	CardStatusExpired   CardStatus = "expired"
	CardStatusSuspended CardStatus = "suspended"
)

// DisabilityCard is owner-bound: Owner is set once at creation and never
// reassigned. Status is written only by the external verification process
// and the expiry sweep, never by the booking path.
type DisabilityCard struct {
	ID               string     `json:"id"`
	Owner            string     `json:"owner"`
	Type             CardType   `json:"type"`
	Status           CardStatus `json:"status"`
	Number           string     `json:"number"`
	IssuingAuthority string     `json:"issuing_authority"`
	ExpiryDate       time.Time  `json:"expiry_date"`
	DocumentURL      *string    `json:"document_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreateCardInput struct {
	Type             CardType
	Number           string
	IssuingAuthority string
	ExpiryDate       time.Time
	DocumentURL      *string
}

type UpdateCardInput struct {
	Type             CardType
	Number           string
	IssuingAuthority string
	ExpiryDate       time.Time
	DocumentURL      *string
}

func ValidCardType(t CardType) bool {
	for _, ct := range CardTypes {
		if t == ct {
			return true
		}
	}
	return false
}
