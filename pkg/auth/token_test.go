package auth

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(&domain.User{ID: "user-1", Role: domain.RoleEmployer})
	require.NoError(t, err)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{ID: "user-1", Role: domain.RoleEmployer}, identity)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue(&domain.User{ID: "user-1", Role: domain.RoleJobseeker})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("other", time.Hour).Issue(&domain.User{ID: "u", Role: domain.RoleJobseeker})
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour).Issue(&domain.User{ID: "u", Role: domain.RoleJobseeker})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestCheckMissingPasswordAlwaysFails(t *testing.T) {
	cost, err := bcrypt.Cost(dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost)

	assert.False(t, CheckMissingPassword("no-such-account"))
	assert.False(t, CheckMissingPassword("anything"))
}

func TestResetTokenHashMatches(t *testing.T) {
	token, hash, err := NewResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.Equal(t, hash, HashResetToken(token))
	assert.NotEqual(t, token, hash)
}
