package handlers

import (
	"gearmatch/internal/config"
	"gearmatch/internal/repos"
	"gearmatch/internal/services"
	"gearmatch/internal/token"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	ProductHandler   *ProductHandler
	RecommendHandler *RecommendHandler
	FormsHandler     *FormsHandler
	AnalyticsHandler *AnalyticsHandler
	Tokens           *token.Service
}

func NewDeps(db *sqlx.DB, cfg config.Config, tokens *token.Service) *Deps {
	shopRepo := repos.NewShopRepo(db)
	prodRepo := repos.NewProductRepo(db)

	authSvc := &services.AuthService{Shops: shopRepo}
	catalogSvc := services.NewCatalogService(prodRepo)
	recSvc := services.NewRecommendService(prodRepo, cfg.RecLimit)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: authSvc, Tokens: tokens},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		RecommendHandler: &RecommendHandler{Rec: recSvc},
		FormsHandler:     &FormsHandler{},
		AnalyticsHandler: &AnalyticsHandler{Catalog: catalogSvc},
		Tokens:           tokens,
	}
}
