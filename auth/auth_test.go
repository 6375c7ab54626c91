package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/backend/models"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse", hash))
	assert.False(t, VerifyPassword("wrong horse", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	user := &models.User{
		ID:       uuid.New(),
		Username: "admin",
		Role:     models.Role{Name: "admin"},
	}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	actor, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.UserID)
	assert.True(t, actor.IsAdmin)
}

func TestTokenGuestIsNotAdmin(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	user := &models.User{
		ID:       uuid.New(),
		Username: "reader",
		Role:     models.Role{Name: "guest"},
	}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	actor, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.False(t, actor.IsAdmin)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	user := &models.User{ID: uuid.New(), Username: "admin", Role: models.Role{Name: "admin"}}
	token, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	user := &models.User{ID: uuid.New(), Username: "admin", Role: models.Role{Name: "admin"}}
	token, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}
