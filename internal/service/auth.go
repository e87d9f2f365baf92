package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type AuthService struct {
	users  ports.UserRepo
	tokens TokenIssuer
}

func NewAuthService(users ports.UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the credential account and its profile. All five fields
// are required and checked before any write; the account and the profile
// are persisted as one row, so a profile-less account cannot exist.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Username:       email,
		PasswordHash:   string(hash),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PhoneNumber:    input.PhoneNumber,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return tok, user, nil
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func validateRegisterInput(input domain.RegisterInput) error {
	switch {
	case strings.TrimSpace(input.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case input.Password == "":
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	case strings.TrimSpace(input.FirstName) == "":
		return fmt.Errorf("%w: first_name is required", domain.ErrValidation)
	case strings.TrimSpace(input.LastName) == "":
		return fmt.Errorf("%w: last_name is required", domain.ErrValidation)
	case strings.TrimSpace(input.PhoneNumber) == "":
		return fmt.Errorf("%w: phone_number is required", domain.ErrValidation)
	}
	return nil
}
