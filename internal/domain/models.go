package domain

type Shop struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password_hash" json:"-"`
	Location string `db:"location" json:"location"`
}

type Product struct {
	ID          int64   `db:"id" json:"id"`
	ShopID      int64   `db:"shop_id" json:"shop_id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Subcategory string  `db:"subcategory" json:"subcategory,omitempty"`
	Price       float64 `db:"price" json:"price"`
	Brand       string  `db:"brand" json:"brand,omitempty"`
	Description string  `db:"description" json:"description,omitempty"`
	Stock       int     `db:"stock" json:"stock"`
	// Attrs carries the category-specific matching fields (experience level,
	// size ranges, style tags). Keys follow the intake form field names.
	Attrs     map[string]string `db:"-" json:"attributes,omitempty"`
	AttrsJSON string            `db:"attrs_json" json:"-"`
	CreatedAt string            `db:"created_at" json:"-"`
}

// ProductInput is the create payload. Price and stock are required;
// pointer fields distinguish an omitted value from a legitimate zero.
type ProductInput struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory"`
	Price       *float64          `json:"price"`
	Brand       string            `json:"brand"`
	Description string            `json:"description"`
	Stock       *int              `json:"stock"`
	Attrs       map[string]string `json:"attributes"`
}

// ProductPatch is a partial update; nil fields are left untouched.
// The product id and owning shop are never patchable.
type ProductPatch struct {
	Name        *string           `json:"name,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Subcategory *string           `json:"subcategory,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Brand       *string           `json:"brand,omitempty"`
	Description *string           `json:"description,omitempty"`
	Stock       *int              `json:"stock,omitempty"`
	Attrs       map[string]string `json:"attributes,omitempty"`
}

// Recommendation pairs a product with its computed match score (0-100).
type Recommendation struct {
	Product
	Score int `json:"score"`
}
