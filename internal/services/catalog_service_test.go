package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"gearmatch/internal/domain"
	"gearmatch/internal/repos"
	"gearmatch/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1) // each :memory: connection is a separate database
	schema := `
	CREATE TABLE shops(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, email TEXT,
	  password_hash TEXT, location TEXT DEFAULT '', created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE products(id INTEGER PRIMARY KEY AUTOINCREMENT, shop_id INTEGER NOT NULL,
	  name TEXT NOT NULL, category TEXT NOT NULL, subcategory TEXT DEFAULT '',
	  price NUMERIC NOT NULL, brand TEXT DEFAULT '', description TEXT DEFAULT '',
	  stock INTEGER DEFAULT 0, attrs_json TEXT DEFAULT '{}',
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	INSERT INTO shops(id,name,email,password_hash) VALUES
	  (1,'Shop A','a@x.com','h'),
	  (2,'Shop B','b@x.com','h');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func catalog(t *testing.T) (*services.CatalogService, *sqlx.DB) {
	t.Helper()
	db := memdb(t)
	return services.NewCatalogService(repos.NewProductRepo(db)), db
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// newInput builds a complete create payload for tests.
func newInput(name, category, subcategory string, price float64, stock int, attrs map[string]string) domain.ProductInput {
	return domain.ProductInput{
		Name: name, Category: category, Subcategory: subcategory,
		Price: fp(price), Stock: ip(stock), Attrs: attrs,
	}
}

func TestCreateAssignsOwnerAndID(t *testing.T) {
	svc, _ := catalog(t)

	p, err := svc.Create(1, newInput("Board", "surfing", "", 599.99, 10, nil))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 1 || p.ShopID != 1 {
		t.Fatalf("want id=1 shop=1, got id=%d shop=%d", p.ID, p.ShopID)
	}
	if p.CreatedAt == "" {
		t.Fatal("created_at must be stamped by the store")
	}

	q, err := svc.Create(1, newInput("Deck", "skating", "", 89.99, 5, nil))
	if err != nil {
		t.Fatal(err)
	}
	if q.ID <= p.ID {
		t.Fatalf("ids must be monotonically assigned: %d then %d", p.ID, q.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := catalog(t)

	cases := []struct {
		name string
		in   domain.ProductInput
	}{
		{"negative price", newInput("Board", "surfing", "", -5, 10, nil)},
		{"negative stock", newInput("Board", "surfing", "", 5, -1, nil)},
		{"missing name", newInput("", "surfing", "", 5, 1, nil)},
		{"missing category", newInput("Board", "", "", 5, 1, nil)},
		{"missing price", domain.ProductInput{Name: "Board", Category: "surfing", Stock: ip(10)}},
		{"missing stock", domain.ProductInput{Name: "Board", Category: "surfing", Price: fp(5)}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(1, tc.in); !domain.IsValidation(err) {
			t.Fatalf("%s: want ValidationError, got %v", tc.name, err)
		}
	}
}

func TestCreateDistinguishesOmittedFromZero(t *testing.T) {
	svc, _ := catalog(t)

	// A legitimate zero price/stock (free sample, sold out) is accepted...
	p, err := svc.Create(1, newInput("Sticker Pack", "skating", "", 0, 0, nil))
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 0 || p.Stock != 0 {
		t.Fatalf("explicit zeros must survive: %+v", p)
	}
	// ...while an absent field is not silently defaulted.
	if _, err := svc.Create(1, domain.ProductInput{Name: "Board", Category: "surfing"}); !domain.IsValidation(err) {
		t.Fatalf("omitted price/stock: want ValidationError, got %v", err)
	}
}

func TestScopingBlocksOtherShops(t *testing.T) {
	svc, _ := catalog(t)

	p, err := svc.Create(1, newInput("Board", "surfing", "", 10, 1, nil))
	if err != nil {
		t.Fatal(err)
	}

	// A product owned by shop 1 must be indistinguishable from a missing
	// one when shop 2 asks.
	if _, err := svc.Get(2, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get: want ErrNotFound, got %v", err)
	}
	name := "Stolen"
	if _, err := svc.Update(2, p.ID, domain.ProductPatch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(2, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}

	// The record is untouched for its owner.
	got, err := svc.Get(1, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Board" {
		t.Fatalf("record mutated across scope: %+v", got)
	}
}

func TestListForShopOrderAndIdempotence(t *testing.T) {
	svc, _ := catalog(t)

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.Create(1, newInput(name, "surfing", "", 1, 1, nil)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Create(2, newInput("Other", "surfing", "", 1, 1, nil)); err != nil {
		t.Fatal(err)
	}

	first, err := svc.ListForShop(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 3 {
		t.Fatalf("want 3 products for shop 1, got %d", len(first))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if first[i].Name != want {
			t.Fatalf("creation order not preserved: pos %d = %q", i, first[i].Name)
		}
	}

	second, err := svc.ListForShop(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != len(first) {
		t.Fatalf("list not idempotent: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("list not idempotent at pos %d", i)
		}
	}
}

func TestUpdateMergesPatchAndProtectsOwner(t *testing.T) {
	svc, _ := catalog(t)

	in := newInput("Board", "surfing", "boards", 599.99, 15, map[string]string{"experience": "Expert"})
	in.Brand = "WaveRider"
	p, err := svc.Create(1, in)
	if err != nil {
		t.Fatal(err)
	}

	price := 549.99
	stock := 12
	got, err := svc.Update(1, p.ID, domain.ProductPatch{Price: &price, Stock: &stock})
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 549.99 || got.Stock != 12 {
		t.Fatalf("patch not applied: %+v", got)
	}
	// Untouched fields survive the merge.
	if got.Name != "Board" || got.Brand != "WaveRider" || got.Attrs["experience"] != "Expert" {
		t.Fatalf("merge clobbered fields: %+v", got)
	}
	// Identity is immutable.
	if got.ID != p.ID || got.ShopID != 1 {
		t.Fatalf("identity changed by patch: %+v", got)
	}

	neg := -1.0
	if _, err := svc.Update(1, p.ID, domain.ProductPatch{Price: &neg}); !domain.IsValidation(err) {
		t.Fatalf("want ValidationError for negative price patch, got %v", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, _ := catalog(t)

	p, err := svc.Create(1, newInput("Board", "surfing", "", 10, 1, nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(1, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(1, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(1, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete should be ErrNotFound, got %v", err)
	}
}

func TestAttrsRoundtrip(t *testing.T) {
	svc, _ := catalog(t)

	attrs := map[string]string{"experience": "Beginner", "surfStyle": "All-around"}
	p, err := svc.Create(1, newInput("Soft-top", "surfing", "", 150, 3, attrs))
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(1, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Attrs["experience"] != "Beginner" || got.Attrs["surfStyle"] != "All-around" {
		t.Fatalf("attributes lost in storage: %+v", got.Attrs)
	}
}
