package services

import (
	"github.com/google/uuid"

	"mzansimarket/internal/domain"
	"mzansimarket/internal/repos"
)

// FallbackSeller is attributed to products authored without a logged-in user.
const FallbackSeller = "My Awesome SME"

// ProductDraft carries the validated authoring fields. Id and seller are
// assigned by the catalog, not the caller.
type ProductDraft struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	Category    domain.Category
}

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) All() ([]domain.Product, error) {
	return s.Prods.All()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// AddProduct assigns id and seller and prepends the product to the catalog.
// Validation happens upstream in the authoring flow.
func (s *CatalogService) AddProduct(draft ProductDraft, seller string) (domain.Product, error) {
	if seller == "" {
		seller = FallbackSeller
	}
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		Seller:      seller,
		Category:    draft.Category,
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
