package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahimvain/pesan-aja/models"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))
	user := &models.User{Id: 7, Username: "admin", Role: models.RoleAdmin}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := svc.Issue(&models.User{Id: 1, Role: models.RoleCustomer})
	require.NoError(t, err)

	// Validity window is 24h, so two days later the claim is dead.
	svc.now = time.Now
	identity, err := svc.Verify(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"))
	verifier := NewTokenService([]byte("secret-b"))

	token, err := issuer.Issue(&models.User{Id: 1, Role: models.RoleCustomer})
	require.NoError(t, err)

	identity, err := verifier.Verify(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		identity, err := svc.Verify(tokenString)
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestExpiredAndInvalidStayDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrTokenExpired, ErrTokenInvalid)
	assert.NotErrorIs(t, ErrTokenInvalid, ErrTokenExpired)
}
