package security

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Token verification failures, checked in this order: shape, signature,
// expiry.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// TokenService issues and verifies signed bearer tokens. The signing
// secret is injected once at construction and never exposed.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces an HS256-signed token carrying the subject identity and
// an absolute expiry of now+ttl.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	claims := jwt.StandardClaims{
		Subject:   subject,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token's signature, then its expiry, and returns the
// embedded subject. Expiry is a hard boundary: a token is rejected from
// the instant now >= exp. Verification depends only on the token and the
// current time.
func (s *TokenService) Verify(tokenString string) (string, error) {
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true, // expiry is checked below with an inclusive boundary
	}
	token, err := parser.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return "", ErrTokenMalformed
			}
			if ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0 {
				return "", ErrBadSignature
			}
		}
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == 0 {
		return "", ErrTokenMalformed
	}
	if time.Now().Unix() >= claims.ExpiresAt {
		return "", ErrTokenExpired
	}
	return claims.Subject, nil
}
