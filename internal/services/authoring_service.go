package services

import (
	"context"
	"errors"

	"mzansimarket/internal/domain"
	"mzansimarket/internal/validate"
)

// Error strings are user-visible: they render inline on the authoring form.
var (
	ErrIncomplete      = errors.New("Please fill all fields, select a category and upload an image.")
	ErrGenerationInput = errors.New("Please provide a product name and image first.")
)

// DescriptionGenerator drafts a product description from a name and image.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, productName string, imageData []byte, mimeType string) (string, error)
}

// AuthoringService validates new-product submissions and hands completed
// drafts to the catalog.
type AuthoringService struct {
	Catalog *CatalogService
	Gen     DescriptionGenerator
}

func NewAuthoringService(catalog *CatalogService, gen DescriptionGenerator) *AuthoringService {
	return &AuthoringService{Catalog: catalog, Gen: gen}
}

// SubmitInput carries the raw form fields of the authoring flow.
type SubmitInput struct {
	Name        string
	Price       string
	Description string
	Category    string
	ImageURL    string
}

// Submit rejects incomplete drafts with ErrIncomplete (no state mutation) and
// otherwise appends the product to the catalog under the seller's name.
func (s *AuthoringService) Submit(in SubmitInput, seller string) (domain.Product, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return domain.Product{}, ErrIncomplete
	}
	price, ok := validate.Price(in.Price)
	if !ok {
		return domain.Product{}, ErrIncomplete
	}
	cat, ok := domain.ParseCategory(in.Category)
	if !ok {
		return domain.Product{}, ErrIncomplete
	}
	if in.Description == "" || in.ImageURL == "" {
		return domain.Product{}, ErrIncomplete
	}
	return s.Catalog.AddProduct(ProductDraft{
		Name:        name,
		Price:       price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    cat,
	}, seller)
}

// Generate requests an AI-drafted description. Name and image must be present
// before the call; failures from the generator pass through for the handler
// to surface as a retryable form error.
func (s *AuthoringService) Generate(ctx context.Context, productName string, imageData []byte, mimeType string) (string, error) {
	if productName == "" || len(imageData) == 0 {
		return "", ErrGenerationInput
	}
	return s.Gen.GenerateDescription(ctx, productName, imageData, mimeType)
}
