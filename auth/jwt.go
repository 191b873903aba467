package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const DefaultTokenTTL = 24 * time.Hour

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// T issues and checks HS256 tokens signed with the shared secret.
type T struct {
	Jwt    string
	secret Secret
	ttl    time.Duration
}

func NewT(secret Secret) *T {
	return &T{secret: secret, ttl: DefaultTokenTTL}
}

// WithTTL sets the lifetime of tokens created afterwards.
func (t *T) WithTTL(ttl time.Duration) *T {
	t.ttl = ttl
	return t
}

// Create signs a token for subject and keeps it in t.Jwt.
func (t *T) Create(subject string) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(t.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	t.Jwt = signed
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns its subject.
func (t *T) Verify(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return []byte(t.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Extract returns the credential of an "Authorization: Bearer ..." header value.
func (t *T) Extract(header string) (string, error) {
	scheme, credential, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", ErrMissingToken
	}
	return credential, nil
}
