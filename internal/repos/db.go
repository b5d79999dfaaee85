package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the store, ensures the schema and seeds demo data when the
// database is empty. The store owns the whole lifecycle; tests construct
// their own with dsn ":memory:".
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A plain :memory: DSN gives every pooled connection its own private
	// database; cap the pool at one so all callers share the same store.
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Shops
CREATE TABLE IF NOT EXISTS shops(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_shops_email_nocase ON shops(LOWER(email));

-- Products (shop_id is the tenancy boundary; never updated after insert)
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  shop_id INTEGER NOT NULL REFERENCES shops(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  subcategory TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  brand TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  attrs_json TEXT NOT NULL DEFAULT '{}',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_shop     ON products(shop_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts the demo shops and products on a fresh database.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM shops`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo shops/products")

	hash := func(raw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return string(h)
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO shops(id,name,email,password_hash,location) VALUES
	  (1,'Demo Surf Shop','admin@demo.com',?,'California, USA'),
	  (2,'Test Skate Shop','test@test.com',?,'New York, USA')`,
		hash("password"), hash("test123"))

	tx.MustExec(`INSERT INTO products(id,shop_id,name,category,subcategory,price,brand,description,stock,attrs_json) VALUES
	  (1,1,'Professional Surfboard','surfing','boards',599.99,'WaveRider','High-performance surfboard for experienced surfers',15,
	    '{"experience":"Expert","surfStyle":"Shortboard performance","waveConditions":"Large waves (6ft+)"}'),
	  (2,1,'Skateboard Deck','skating','decks',89.99,'StreetPro','Premium maple deck for street skating',25,
	    '{"experience":"Beginner","skateStyle":"Street","deckWidth":"8.0-8.25\""}'),
	  (3,1,'Ski Helmet','skiing','helmets',149.99,'SnowSafe','Lightweight helmet with advanced protection',12,
	    '{"activity":"Alpine skiing","features":"Ventilation system"}')`)

	return tx.Commit()
}
