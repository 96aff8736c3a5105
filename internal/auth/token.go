package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "aesn-api"
	tokenAudience = "aesn-client"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// expiry, malformed payload, or missing subject. Verification deliberately
// does not distinguish tampering from expiry in its result.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssuedToken is a freshly signed access token with its absolute expiry.
type IssuedToken struct {
	Token     string    `json:"access_token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenService issues and verifies HS256-signed access tokens carrying the
// subject login. Invalidation is time-based only; there is no revocation
// list, so a token stays valid until natural expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with the given symmetric
// secret and issuing tokens valid for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the subject login.
func (ts *TokenService) Issue(login string) (IssuedToken, error) {
	if len(ts.secret) == 0 {
		return IssuedToken{}, errors.New("token secret not configured")
	}

	now := time.Now()
	expiresAt := now.Add(ts.ttl)
	claims := jwt.MapClaims{
		"sub": login,
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return IssuedToken{}, err
	}

	return IssuedToken{Token: signed, TokenType: "bearer", ExpiresAt: expiresAt}, nil
}

// Verify validates the token's signature and time claims and returns the
// subject login. Any failure yields ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	login, err := claims.GetSubject()
	if err != nil || login == "" {
		return "", ErrInvalidToken
	}
	return login, nil
}
