package token

import (
	"testing"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	raw, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	principal, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", principal.UserID)
	assert.Equal(t, "alice@example.com", principal.Email)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager(testSecret, -time.Minute)

	raw, err := m.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = m.Parse(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager(testSecret, time.Hour)
	verifier := NewManager("another-secret-another-secret-ab", time.Hour)

	raw, err := issuer.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = verifier.Parse(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	_, err := m.Parse("not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Parse_RejectsUnsignedToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Parse_MissingSubject(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := anon.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Parse(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
