package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/handler/dto"
	hmocks "github.com/accesspass/accesspass/internal/handler/mocks"
	"github.com/accesspass/accesspass/internal/middleware"
	"github.com/accesspass/accesspass/internal/router"
	"github.com/accesspass/accesspass/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	auth       *hmocks.MockAuthSvc
	cards      *hmocks.MockCardSvc
	companions *hmocks.MockCompanionSvc
	tickets    *hmocks.MockTicketSvc
	events     *hmocks.MockEventSvc
	tokens     *token.Manager
	router     http.Handler
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		auth:       hmocks.NewMockAuthSvc(t),
		cards:      hmocks.NewMockCardSvc(t),
		companions: hmocks.NewMockCompanionSvc(t),
		tickets:    hmocks.NewMockTicketSvc(t),
		events:     hmocks.NewMockEventSvc(t),
		tokens:     token.NewManager("0123456789abcdef0123456789abcdef", time.Hour),
	}

	h := NewHandler(f.auth, f.cards, f.companions, f.tickets, f.events)
	f.router = router.InitRouter("test", h, middleware.Auth(f.tokens))

	return f
}

// bearerFor mints a valid token for the given user id.
func (f *fixture) bearerFor(t *testing.T, userID string) string {
	t.Helper()
	raw, err := f.tokens.Issue(&domain.User{ID: userID, Email: userID + "@example.com"})
	require.NoError(t, err)
	return "Bearer " + raw
}

func (f *fixture) do(t *testing.T, method, path, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	f.router.ServeHTTP(w, req)
	return w
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	f := setup(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		Username:  "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		CreatedAt: time.Now(),
	}
	f.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := f.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:       "alice@example.com",
		Password:    "s3cret-pass",
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+31612345678",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.Email, resp.Username)
}

func TestHandler_Register_MissingField(t *testing.T) {
	f := setup(t)

	// phone_number absent: binding fails before the service is touched
	w := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":      "alice@example.com",
		"password":   "s3cret-pass",
		"first_name": "Alice",
		"last_name":  "Smith",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, w))
	f.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:       "alice@example.com",
		Password:    "short",
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+31612345678",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	f := setup(t)

	f.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := f.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:       "taken@example.com",
		Password:    "s3cret-pass",
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+31612345678",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_taken", errCode(t, w))
}

func TestHandler_Login_Success(t *testing.T) {
	f := setup(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com", CreatedAt: time.Now()}
	f.auth.EXPECT().Login(mock.Anything, "alice@example.com", "s3cret-pass").Return("signed-token", user, nil)

	w := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	f := setup(t)

	f.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return("", nil, domain.ErrInvalidCredentials)

	w := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errCode(t, w))
}

// --- Principal resolution ---

func TestHandler_GuardedRoute_NoToken(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodGet, "/api/cards", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	f.cards.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_GuardedRoute_GarbageToken(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodGet, "/api/cards", "Bearer not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GuardedRoute_PrincipalFromToken(t *testing.T) {
	f := setup(t)

	var seen domain.Principal
	f.cards.EXPECT().List(mock.Anything, mock.Anything).Run(func(ctx context.Context, principal domain.Principal) {
		seen = principal
	}).Return(nil, nil)

	w := f.do(t, http.MethodGet, "/api/cards", f.bearerFor(t, "u1"), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", seen.UserID)
}

// --- Cards ---

func TestHandler_CreateCard_Success(t *testing.T) {
	f := setup(t)

	card := &domain.DisabilityCard{
		ID:     uuid.New().String(),
		Owner:  "u1",
		Type:   domain.CardTypeMobility,
		Status: domain.CardStatusPending,
	}
	f.cards.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(card, nil)

	w := f.do(t, http.MethodPost, "/api/cards", f.bearerFor(t, "u1"), dto.CreateCardRequest{
		Type:             "mobility",
		Number:           "DC-1234",
		IssuingAuthority: "City Health Board",
		ExpiryDate:       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateCard_BadExpiryDate(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodPost, "/api/cards", f.bearerFor(t, "u1"), dto.CreateCardRequest{
		Type:             "mobility",
		Number:           "DC-1234",
		IssuingAuthority: "City Health Board",
		ExpiryDate:       "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCard_NotFound(t *testing.T) {
	f := setup(t)

	cardID := uuid.New().String()
	f.cards.EXPECT().GetByID(mock.Anything, mock.Anything, cardID).Return(nil, domain.ErrCardNotFound)

	w := f.do(t, http.MethodGet, "/api/cards/"+cardID, f.bearerFor(t, "u1"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errCode(t, w))
}

func TestHandler_GetCard_InvalidID(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodGet, "/api/cards/not-a-uuid", f.bearerFor(t, "u1"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateCard_Forbidden(t *testing.T) {
	f := setup(t)

	cardID := uuid.New().String()
	f.cards.EXPECT().Update(mock.Anything, mock.Anything, cardID, mock.Anything).Return(nil, domain.ErrNotOwner)

	w := f.do(t, http.MethodPut, "/api/cards/"+cardID, f.bearerFor(t, "u2"), dto.UpdateCardRequest{
		Type:             "mobility",
		Number:           "DC-1234",
		IssuingAuthority: "City Health Board",
		ExpiryDate:       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	// mutation on someone else's card is denied, not hidden
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errCode(t, w))
}

func TestHandler_DeleteCard_Success(t *testing.T) {
	f := setup(t)

	cardID := uuid.New().String()
	f.cards.EXPECT().Delete(mock.Anything, mock.Anything, cardID).Return(nil)

	w := f.do(t, http.MethodDelete, "/api/cards/"+cardID, f.bearerFor(t, "u1"), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Companions ---

func TestHandler_CreateCompanion_Success(t *testing.T) {
	f := setup(t)

	companion := &domain.Companion{ID: uuid.New().String(), Owner: "u1", FirstName: "Jane"}
	f.companions.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(companion, nil)

	w := f.do(t, http.MethodPost, "/api/companions", f.bearerFor(t, "u1"), dto.CreateCompanionRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Relation:  "caregiver",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_DeleteCompanion_Forbidden(t *testing.T) {
	f := setup(t)

	companionID := uuid.New().String()
	f.companions.EXPECT().Delete(mock.Anything, mock.Anything, companionID).Return(domain.ErrNotOwner)

	w := f.do(t, http.MethodDelete, "/api/companions/"+companionID, f.bearerFor(t, "u2"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Tickets ---

func TestHandler_BookTicket_Success(t *testing.T) {
	f := setup(t)

	eventID := uuid.New().String()
	ticket := &domain.Ticket{
		ID:        uuid.New().String(),
		Owner:     "u1",
		EventID:   eventID,
		Type:      domain.TicketTypeRegular,
		CreatedAt: time.Now(),
	}
	f.tickets.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(ticket, nil)

	w := f.do(t, http.MethodPost, "/api/tickets", f.bearerFor(t, "u1"), dto.BookTicketRequest{EventID: eventID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "regular", resp.Type)
}

func TestHandler_BookTicket_CardPending(t *testing.T) {
	f := setup(t)

	f.tickets.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrCardPending)

	cardID := uuid.New().String()
	w := f.do(t, http.MethodPost, "/api/tickets", f.bearerFor(t, "u1"), dto.BookTicketRequest{
		EventID: uuid.New().String(),
		CardID:  &cardID,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "card_pending", errCode(t, w))
}

func TestHandler_BookTicket_CardExpired(t *testing.T) {
	f := setup(t)

	f.tickets.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrCardExpired)

	cardID := uuid.New().String()
	w := f.do(t, http.MethodPost, "/api/tickets", f.bearerFor(t, "u1"), dto.BookTicketRequest{
		EventID: uuid.New().String(),
		CardID:  &cardID,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "card_expired", errCode(t, w))
}

func TestHandler_BookTicket_CardOwnedByAnother(t *testing.T) {
	f := setup(t)

	f.tickets.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotOwner)

	cardID := uuid.New().String()
	w := f.do(t, http.MethodPost, "/api/tickets", f.bearerFor(t, "u2"), dto.BookTicketRequest{
		EventID: uuid.New().String(),
		CardID:  &cardID,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errCode(t, w))
}

func TestHandler_BookTicket_SoldOut(t *testing.T) {
	f := setup(t)

	f.tickets.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNoAvailableSpots)

	w := f.do(t, http.MethodPost, "/api/tickets", f.bearerFor(t, "u1"), dto.BookTicketRequest{
		EventID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "sold_out", errCode(t, w))
}

func TestHandler_CancelTicket_NotFound(t *testing.T) {
	f := setup(t)

	ticketID := uuid.New().String()
	f.tickets.EXPECT().Cancel(mock.Anything, mock.Anything, ticketID).Return(domain.ErrTicketNotFound)

	w := f.do(t, http.MethodDelete, "/api/tickets/"+ticketID, f.bearerFor(t, "u1"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Events ---

func TestHandler_ListEvents_Public(t *testing.T) {
	f := setup(t)

	events := []*domain.Event{{ID: "e1", Name: "Concert"}}
	f.events.EXPECT().List(mock.Anything).Return(events, nil)

	w := f.do(t, http.MethodGet, "/api/events", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetEvent_Public(t *testing.T) {
	f := setup(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:          domain.Event{ID: eventID, Name: "Concert", MaxCapacity: 100},
		AvailableSpots: 95,
	}
	f.events.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := f.do(t, http.MethodGet, "/api/events/"+eventID, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.AvailableSpots)
}

func TestHandler_CreateEvent_RequiresAuth(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodPost, "/api/events", "", dto.CreateEventRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	f := setup(t)

	event := &domain.Event{ID: uuid.New().String(), Name: "Concert", Type: domain.EventTypeConcert}
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := f.do(t, http.MethodPost, "/api/events", f.bearerFor(t, "u1"), dto.CreateEventRequest{
		Name:        "Concert",
		Type:        "concert",
		StartsAt:    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Location:    "Main Hall",
		Organizer:   "City Arts",
		MaxCapacity: 100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	f := setup(t)

	eventID := uuid.New().String()
	f.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := f.do(t, http.MethodGet, "/api/events/"+eventID, "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", errCode(t, w))
}

func TestHandler_Health(t *testing.T) {
	f := setup(t)

	w := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
