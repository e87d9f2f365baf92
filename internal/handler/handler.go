package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/handler/dto"
	"github.com/accesspass/accesspass/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type CardSvc interface {
	Create(ctx context.Context, principal domain.Principal, input domain.CreateCardInput) (*domain.DisabilityCard, error)
	List(ctx context.Context, principal domain.Principal) ([]*domain.DisabilityCard, error)
	GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.DisabilityCard, error)
	Update(ctx context.Context, principal domain.Principal, id string, input domain.UpdateCardInput) (*domain.DisabilityCard, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}

type CompanionSvc interface {
	Create(ctx context.Context, principal domain.Principal, input domain.CreateCompanionInput) (*domain.Companion, error)
	List(ctx context.Context, principal domain.Principal) ([]*domain.Companion, error)
	GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.Companion, error)
	Update(ctx context.Context, principal domain.Principal, id string, input domain.UpdateCompanionInput) (*domain.Companion, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}

type TicketSvc interface {
	Book(ctx context.Context, principal domain.Principal, input domain.BookTicketInput) (*domain.Ticket, error)
	List(ctx context.Context, principal domain.Principal) ([]*domain.Ticket, error)
	GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.Ticket, error)
	Cancel(ctx context.Context, principal domain.Principal, id string) error
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
}

type Handler struct {
	authService      AuthSvc
	cardService      CardSvc
	companionService CompanionSvc
	ticketService    TicketSvc
	eventService     EventSvc
}

func NewHandler(
	authService AuthSvc,
	cardService CardSvc,
	companionService CompanionSvc,
	ticketService TicketSvc,
	eventService EventSvc,
) *Handler {
	return &Handler{
		authService:      authService,
		cardService:      cardService,
		companionService: companionService,
		ticketService:    ticketService,
		eventService:     eventService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Disability cards

func (h *Handler) CreateCard(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	expiry, err := time.Parse(time.RFC3339, req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid expiry_date format, expected RFC3339",
			Code:  "validation",
		})
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), principal, domain.CreateCardInput{
		Type:             domain.CardType(req.Type),
		Number:           req.Number,
		IssuingAuthority: req.IssuingAuthority,
		ExpiryDate:       expiry,
		DocumentURL:      req.DocumentURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

func (h *Handler) ListCards(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	cards, err := h.cardService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, dto.ToCardResponse(card))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCard(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

func (h *Handler) UpdateCard(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	expiry, err := time.Parse(time.RFC3339, req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid expiry_date format, expected RFC3339",
			Code:  "validation",
		})
		return
	}

	card, err := h.cardService.Update(c.Request.Context(), principal, id, domain.UpdateCardInput{
		Type:             domain.CardType(req.Type),
		Number:           req.Number,
		IssuingAuthority: req.IssuingAuthority,
		ExpiryDate:       expiry,
		DocumentURL:      req.DocumentURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

func (h *Handler) DeleteCard(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.cardService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Companions

func (h *Handler) CreateCompanion(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.CreateCompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	companion, err := h.companionService.Create(c.Request.Context(), principal, domain.CreateCompanionInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Relation:    req.Relation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanionResponse(companion))
}

func (h *Handler) ListCompanions(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	companions, err := h.companionService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CompanionResponse, 0, len(companions))
	for _, companion := range companions {
		resp = append(resp, dto.ToCompanionResponse(companion))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCompanion(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	companion, err := h.companionService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanionResponse(companion))
}

func (h *Handler) UpdateCompanion(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	companion, err := h.companionService.Update(c.Request.Context(), principal, id, domain.UpdateCompanionInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Relation:    req.Relation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanionResponse(companion))
}

func (h *Handler) DeleteCompanion(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.companionService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Tickets

func (h *Handler) BookTicket(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req dto.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	ticket, err := h.ticketService.Book(c.Request.Context(), principal, domain.BookTicketInput{
		EventID: req.EventID,
		CardID:  req.CardID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		resp = append(resp, dto.ToTicketResponse(ticket))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTicket(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.ticketService.Cancel(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
			Code:  "validation",
		})
		return
	}

	var endsAt time.Time
	if req.EndsAt != "" {
		endsAt, err = time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid ends_at format, expected RFC3339",
				Code:  "validation",
			})
			return
		}
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.EventType(req.Type),
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Website:     req.Website,
		MaxCapacity: req.MaxCapacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

// principal aborts with 401 when the auth middleware did not resolve one.
// Guarded handlers never run any service logic without a principal.
func (h *Handler) principal(c *ginext.Context) (domain.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.ErrorResponse{Error: "unauthorized", Code: "unauthorized"},
		)
		return domain.Principal{}, false
	}
	return principal, true
}

func (h *Handler) pathID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id", Code: "validation"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error(), Code: "unauthorized"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error(), Code: "invalid_credentials"})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Code: "forbidden"})

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrCompanionNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})

	case errors.Is(err, domain.ErrCardNotActive):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Code: cardStateCode(err)})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "email_taken"})

	case errors.Is(err, domain.ErrNoAvailableSpots):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: "sold_out"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "internal"})
	}
}

func cardStateCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrCardPending):
		return "card_pending"
	case errors.Is(err, domain.ErrCardExpired):
		return "card_expired"
	case errors.Is(err, domain.ErrCardSuspended):
		return "card_suspended"
	default:
		return "card_not_active"
	}
}
