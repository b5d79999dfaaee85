package services

import (
	"errors"

	"gearmatch/internal/domain"
	"gearmatch/internal/repos"
	"gearmatch/internal/validate"

	"golang.org/x/crypto/bcrypt"
)

// AuthService is the shop directory: registration and credential checks.
// It never touches the catalog or the recommendation engine.
type AuthService struct {
	Shops *repos.ShopRepo
}

// Register creates a new shop. Fails with ErrConflict when the email is
// already taken (case-insensitive).
func (s *AuthService) Register(name, email, secret, location string) (*domain.Shop, error) {
	name, ok := validate.ShopName(name)
	if !ok {
		return nil, domain.Invalid("name", "required, at most 80 characters")
	}
	email, ok = validate.Email(email)
	if !ok {
		return nil, domain.Invalid("email", "malformed address")
	}
	if !validate.Secret(secret) {
		return nil, domain.Invalid("password", "must be 6-72 characters")
	}

	if _, err := s.Shops.ByEmail(email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), 12)
	if err != nil {
		return nil, err
	}
	return s.Shops.Create(name, email, string(hash), location)
}

// Authenticate checks credentials. Any mismatch, including an unknown
// email, surfaces as ErrUnauthorized.
func (s *AuthService) Authenticate(email, secret string) (*domain.Shop, error) {
	shop, err := s.Shops.ByEmail(email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(shop.Hash), []byte(secret)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return shop, nil
}
