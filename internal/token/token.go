// Package token issues and verifies the opaque session tokens that bind a
// shop identity to a time-bounded session. Tokens are HMAC-SHA256 JWTs;
// callers only ever see them as strings.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissing = errors.New("token missing")
	ErrInvalid = errors.New("token invalid")
	ErrExpired = errors.New("token expired")
)

type claims struct {
	ShopID int64 `json:"shop_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed token for the shop, valid for the configured TTL.
func (s *Service) Issue(shopID int64) (string, error) {
	now := time.Now()
	c := &claims{
		ShopID: shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify validates a token and yields the shop identity it binds.
// Failures map to ErrMissing, ErrExpired or ErrInvalid.
func (s *Service) Verify(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrMissing
	}
	tok, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	c, ok := tok.Claims.(*claims)
	if !ok || c.ShopID < 1 {
		return 0, ErrInvalid
	}
	return c.ShopID, nil
}
