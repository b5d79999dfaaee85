package services

import (
	"strings"

	"gearmatch/internal/domain"
	"gearmatch/internal/repos"
)

// CatalogService owns the per-shop catalog. Every operation is scoped to
// the validated shop identity; nothing here can reach another shop's rows.
type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Create validates and inserts a product owned by shopID. Name, category,
// price and stock are all required; an omitted price or stock is rejected,
// not defaulted to zero.
func (s *CatalogService) Create(shopID int64, in domain.ProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" {
		return domain.Product{}, domain.Invalid("name", "required")
	}
	if category == "" {
		return domain.Product{}, domain.Invalid("category", "required")
	}
	if in.Price == nil {
		return domain.Product{}, domain.Invalid("price", "required")
	}
	if *in.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must not be negative")
	}
	if in.Stock == nil {
		return domain.Product{}, domain.Invalid("stock", "required")
	}
	if *in.Stock < 0 {
		return domain.Product{}, domain.Invalid("stock", "must not be negative")
	}
	return s.Prods.Create(shopID, domain.Product{
		Name:        name,
		Category:    category,
		Subcategory: strings.TrimSpace(in.Subcategory),
		Price:       *in.Price,
		Brand:       in.Brand,
		Description: in.Description,
		Stock:       *in.Stock,
		Attrs:       in.Attrs,
	})
}

func (s *CatalogService) ListForShop(shopID int64) ([]domain.Product, error) {
	return s.Prods.ListForShop(shopID)
}

func (s *CatalogService) Get(shopID, id int64) (domain.Product, error) {
	return s.Prods.Get(shopID, id)
}

// Update merges the patch onto the existing record. The id and owning shop
// are not patchable; scoping rules match Get.
func (s *CatalogService) Update(shopID, id int64, patch domain.ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Get(shopID, id)
	if err != nil {
		return domain.Product{}, err
	}

	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		p.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Subcategory != nil {
		p.Subcategory = strings.TrimSpace(*patch.Subcategory)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Attrs != nil {
		p.Attrs = patch.Attrs
	}

	if p.Name == "" {
		return domain.Product{}, domain.Invalid("name", "required")
	}
	if p.Category == "" {
		return domain.Product{}, domain.Invalid("category", "required")
	}
	if p.Price < 0 {
		return domain.Product{}, domain.Invalid("price", "must not be negative")
	}
	if p.Stock < 0 {
		return domain.Product{}, domain.Invalid("stock", "must not be negative")
	}
	return s.Prods.Update(shopID, p)
}

func (s *CatalogService) Delete(shopID, id int64) error {
	return s.Prods.Delete(shopID, id)
}
