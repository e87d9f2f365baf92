package service

import (
	"context"
	"testing"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type staticIssuer struct {
	token string
	err   error
}

func (s staticIssuer) Issue(_ *domain.User) (string, error) {
	return s.token, s.err
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:       "Alice@Example.com",
		Password:    "s3cret-pass",
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+31612345678",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewAuthService(users, staticIssuer{})

	var persisted *domain.User
	users.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *domain.User) {
		persisted = user
	}).Return(nil)

	user, err := svc.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, user.Email, user.Username) // username mirrors email
	assert.Equal(t, "Alice", user.FirstName)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, persisted)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("s3cret-pass")))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(nil, staticIssuer{})

	mutations := map[string]func(*domain.RegisterInput){
		"email":        func(in *domain.RegisterInput) { in.Email = "" },
		"password":     func(in *domain.RegisterInput) { in.Password = "" },
		"first_name":   func(in *domain.RegisterInput) { in.FirstName = "  " },
		"last_name":    func(in *domain.RegisterInput) { in.LastName = "" },
		"phone_number": func(in *domain.RegisterInput) { in.PhoneNumber = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			input := validRegisterInput()
			mutate(&input)

			_, err := svc.Register(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewAuthService(users, staticIssuer{})

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewAuthService(users, staticIssuer{token: "signed-token"})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	tok, user, err := svc.Login(context.Background(), " Alice@Example.com ", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", tok)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewAuthService(users, staticIssuer{})

	users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	// unknown email and wrong password are indistinguishable
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewAuthService(users, staticIssuer{})

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(nil, staticIssuer{})

	_, _, err := svc.Login(context.Background(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
