package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/programmer-tapa/order-service/internal/service"
)

var ErrInvalidToken = errors.New("invalid identity token")

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}

type tokenClaims struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Expires int64  `json:"exp"`
}

// TokenStrategy signs and verifies identity tokens using HMAC signatures.
type TokenStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenStrategy builds TokenStrategy with provided secret and options.
func NewTokenStrategy(secret string, opts Options) *TokenStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenStrategy{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed token carrying the identity.
func (s *TokenStrategy) Issue(identity service.Identity) (string, error) {
	claims := tokenClaims{
		ID:      identity.ID,
		Email:   identity.Email,
		Role:    identity.Role,
		Expires: time.Now().Add(s.ttl).Unix(),
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + s.sign(payload), nil
}

// Parse validates the token and returns the encoded identity.
func (s *TokenStrategy) Parse(token string) (service.Identity, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return service.Identity{}, ErrInvalidToken
	}
	expected := s.sign(payload)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return service.Identity{}, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return service.Identity{}, ErrInvalidToken
	}
	var claims tokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return service.Identity{}, ErrInvalidToken
	}
	if time.Now().Unix() > claims.Expires {
		return service.Identity{}, ErrInvalidToken
	}

	return service.Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}

func (s *TokenStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
