package security_test

import (
	"testing"
	"time"

	"tasklist/internal/security"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")

	token, err := tokens.Issue("user-123", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")

	token, err := tokens.Issue("user-123", -time.Minute)
	assert.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestTokenService_ExpiryBoundaryIsInclusive(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")

	// A zero TTL puts exp at the issuing instant; now >= exp must reject.
	token, err := tokens.Issue("user-123", 0)
	assert.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")
	other := security.NewTokenService("another_secret")

	token, err := tokens.Issue("user-123", time.Hour)
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, security.ErrBadSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")

	for _, raw := range []string{"", "garbage", "not.a.token", "a.b"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, security.ErrTokenMalformed, "token %q", raw)
	}
}

func TestTokenService_MissingSubjectOrExpiry(t *testing.T) {
	tokens := security.NewTokenService("test_jwt_secret")

	// Signed correctly but without the claims Verify requires.
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: "user-123"})
	raw, err := noExp.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, security.ErrTokenMalformed)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	raw, err = noSub.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, security.ErrTokenMalformed)
}
