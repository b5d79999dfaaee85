package services_test

import (
	"errors"
	"strings"
	"testing"

	"gearmatch/internal/domain"
	"gearmatch/internal/repos"
	"gearmatch/internal/services"
)

func directory(t *testing.T) *services.AuthService {
	t.Helper()
	return &services.AuthService{Shops: repos.NewShopRepo(memdb(t))}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := directory(t)

	shop, err := svc.Register("North Shore Boards", "owner@northshore.test", "hangten1", "Oahu, HI")
	if err != nil {
		t.Fatal(err)
	}
	if shop.ID == 0 {
		t.Fatal("registered shop must get an id")
	}
	if strings.Contains(shop.Hash, "hangten1") {
		t.Fatal("credential secret stored in plaintext")
	}
	if !strings.HasPrefix(shop.Hash, "$2") {
		t.Fatalf("unexpected hash format: %s", shop.Hash)
	}

	got, err := svc.Authenticate("owner@northshore.test", "hangten1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != shop.ID {
		t.Fatalf("authenticated wrong shop: %d vs %d", got.ID, shop.ID)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := directory(t)

	if _, err := svc.Register("Shop A", "a@dup.com", "secret1", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register("Shop B", "a@dup.com", "secret2", ""); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	// Email uniqueness is case-insensitive.
	if _, err := svc.Register("Shop C", "A@DUP.COM", "secret3", ""); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict for case variant, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := directory(t)

	if _, err := svc.Register("Shop A", "a@x.test", "rightpass", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate("a@x.test", "wrongpass"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("wrong password: want ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@x.test", "rightpass"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("unknown email: want ErrUnauthorized, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := directory(t)

	if _, err := svc.Register("", "a@x.test", "secret1", ""); !domain.IsValidation(err) {
		t.Fatalf("missing name: want ValidationError, got %v", err)
	}
	if _, err := svc.Register("Shop", "not-an-email", "secret1", ""); !domain.IsValidation(err) {
		t.Fatalf("bad email: want ValidationError, got %v", err)
	}
	if _, err := svc.Register("Shop", "a@x.test", "tiny", ""); !domain.IsValidation(err) {
		t.Fatalf("short secret: want ValidationError, got %v", err)
	}
}
