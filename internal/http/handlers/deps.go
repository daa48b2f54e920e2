package handlers

import (
	"github.com/jmoiron/sqlx"

	"mzansimarket/internal/repos"
	"mzansimarket/internal/services"
)

type Deps struct {
	HomeHandler      *HomeHandler
	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	SessionHandler   *SessionHandler
	AuthoringHandler *AuthoringHandler
}

func NewDeps(db *sqlx.DB, gen services.DescriptionGenerator) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	authoringSvc := services.NewAuthoringService(catalogSvc, gen)

	return &Deps{
		HomeHandler:      &HomeHandler{Catalog: catalogSvc, Cart: cartSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		SessionHandler:   &SessionHandler{},
		AuthoringHandler: &AuthoringHandler{Authoring: authoringSvc},
	}
}
