package repos

import (
	"database/sql"
	"encoding/json"
	"errors"

	"gearmatch/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, shop_id, name, category, subcategory, price, brand, description, stock, attrs_json,
  created_at`

// Create inserts a product stamped with the owning shop. The caller has
// already validated required fields.
func (r *ProductRepo) Create(shopID int64, p domain.Product) (domain.Product, error) {
	attrs, err := marshalAttrs(p.Attrs)
	if err != nil {
		return domain.Product{}, err
	}
	res, err := r.db.Exec(`
	  INSERT INTO products(shop_id,name,category,subcategory,price,brand,description,stock,attrs_json)
	  VALUES(?,?,?,?,?,?,?,?,?)`,
		shopID, p.Name, p.Category, p.Subcategory, p.Price, p.Brand, p.Description, p.Stock, attrs)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(shopID, id)
}

// ListForShop returns the shop's products in creation order.
func (r *ProductRepo) ListForShop(shopID int64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE shop_id = ?
	  ORDER BY id`, shopID)
	if err != nil {
		return nil, err
	}
	return decodeAll(out)
}

// Get resolves a product within the shop's scope. A product owned by a
// different shop is indistinguishable from a missing one.
func (r *ProductRepo) Get(shopID, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ? AND shop_id = ?`, id, shopID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return decode(p)
}

// Update writes back a full record; id and shop_id are fixed by the WHERE
// clause and never part of the SET list.
func (r *ProductRepo) Update(shopID int64, p domain.Product) (domain.Product, error) {
	attrs, err := marshalAttrs(p.Attrs)
	if err != nil {
		return domain.Product{}, err
	}
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name=?, category=?, subcategory=?, price=?, brand=?, description=?, stock=?, attrs_json=?
	  WHERE id = ? AND shop_id = ?`,
		p.Name, p.Category, p.Subcategory, p.Price, p.Brand, p.Description, p.Stock, attrs,
		p.ID, shopID)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return r.Get(shopID, p.ID)
}

func (r *ProductRepo) Delete(shopID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ? AND shop_id = ?`, id, shopID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCategory resolves the recommendation candidate set: all products in
// the category, across every shop when shopID is nil, ordered by id so the
// engine's tie-break is stable.
func (r *ProductRepo) ListByCategory(shopID *int64, category string) ([]domain.Product, error) {
	var out []domain.Product
	var err error
	if shopID == nil {
		err = r.db.Select(&out, `
		  SELECT `+productCols+`
		  FROM products
		  WHERE LOWER(category) = LOWER(?)
		  ORDER BY id`, category)
	} else {
		err = r.db.Select(&out, `
		  SELECT `+productCols+`
		  FROM products
		  WHERE LOWER(category) = LOWER(?) AND shop_id = ?
		  ORDER BY id`, category, *shopID)
	}
	if err != nil {
		return nil, err
	}
	return decodeAll(out)
}

func marshalAttrs(attrs map[string]string) (string, error) {
	if len(attrs) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(p domain.Product) (domain.Product, error) {
	if p.AttrsJSON == "" || p.AttrsJSON == "{}" {
		p.AttrsJSON = ""
		return p, nil
	}
	if err := json.Unmarshal([]byte(p.AttrsJSON), &p.Attrs); err != nil {
		return domain.Product{}, err
	}
	p.AttrsJSON = ""
	return p, nil
}

func decodeAll(ps []domain.Product) ([]domain.Product, error) {
	for i := range ps {
		d, err := decode(ps[i])
		if err != nil {
			return nil, err
		}
		ps[i] = d
	}
	return ps, nil
}
