package repos

import (
	"database/sql"
	"errors"
	"strings"

	"gearmatch/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ShopRepo struct{ DB *sqlx.DB }

func NewShopRepo(db *sqlx.DB) *ShopRepo { return &ShopRepo{DB: db} }

func (r *ShopRepo) ByEmail(email string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.DB.Get(&s, `SELECT id,name,email,password_hash,location FROM shops WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepo) ByID(id int64) (*domain.Shop, error) {
	var s domain.Shop
	err := r.DB.Get(&s, `SELECT id,name,email,password_hash,location FROM shops WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new shop. The unique index on LOWER(email) backs the
// duplicate check; a violation surfaces as ErrConflict.
func (r *ShopRepo) Create(name, email, hash, location string) (*domain.Shop, error) {
	res, err := r.DB.Exec(`INSERT INTO shops(name,email,password_hash,location) VALUES(?,?,?,?)`,
		name, email, hash, location)
	if err != nil {
		// modernc sqlite has no typed constraint error; match the message so
		// a lost race on the email index maps to ErrConflict while real
		// storage failures keep their cause.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Shop{ID: id, Name: name, Email: email, Hash: hash, Location: location}, nil
}
