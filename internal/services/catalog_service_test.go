package services_test

import (
	"context"
	"errors"
	"testing"

	"mzansimarket/internal/domain"
	"mzansimarket/internal/repos"
	"mzansimarket/internal/services"
)

func newCatalogService(t *testing.T) *services.CatalogService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return services.NewCatalogService(repos.NewProductRepo(db))
}

func TestSeedCatalogOrder(t *testing.T) {
	svc := newCatalogService(t)
	all, err := svc.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(repos.SeedProducts) {
		t.Fatalf("want %d seed products, got %d", len(repos.SeedProducts), len(all))
	}
	for i, p := range all {
		if p.ID != repos.SeedProducts[i].ID {
			t.Fatalf("seed order broken at %d: want %s got %s", i, repos.SeedProducts[i].ID, p.ID)
		}
	}
}

func TestAddProductPrependsAndAttributesSeller(t *testing.T) {
	svc := newCatalogService(t)

	p, err := svc.AddProduct(services.ProductDraft{
		Name:        "Amarula Fudge (250g)",
		Price:       95,
		Description: "Creamy fudge with a hint of Amarula.",
		ImageURL:    "data:image/png;base64,xx",
		Category:    domain.CategoryFoodDrink,
	}, "SME Owner")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("catalog must assign an id")
	}
	if p.Seller != "SME Owner" {
		t.Fatalf("want seller attribution, got %q", p.Seller)
	}

	all, err := svc.All()
	if err != nil {
		t.Fatal(err)
	}
	if all[0].ID != p.ID {
		t.Fatalf("new product must be first in the catalog, got %s", all[0].ID)
	}
}

func TestAddProductFallbackSeller(t *testing.T) {
	svc := newCatalogService(t)
	p, err := svc.AddProduct(services.ProductDraft{
		Name:        "Veldskoen Leather Shoes",
		Price:       899,
		Description: "Classic handmade vellies.",
		ImageURL:    "data:image/png;base64,yy",
		Category:    domain.CategoryApparel,
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Seller != services.FallbackSeller {
		t.Fatalf("want fallback seller %q, got %q", services.FallbackSeller, p.Seller)
	}
}

func TestAddedProductIdsAreUnique(t *testing.T) {
	svc := newCatalogService(t)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, err := svc.AddProduct(services.ProductDraft{
			Name: "Rusks", Price: 40, Description: "d", ImageURL: "u",
			Category: domain.CategoryFoodDrink,
		}, "SME Owner")
		if err != nil {
			t.Fatal(err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

type stubGen struct {
	text string
	err  error
}

func (g stubGen) GenerateDescription(context.Context, string, []byte, string) (string, error) {
	return g.text, g.err
}

func TestAuthoringSubmitValidation(t *testing.T) {
	catalog := newCatalogService(t)
	auth := services.NewAuthoringService(catalog, nil)

	before, _ := catalog.All()

	cases := []services.SubmitInput{
		{Price: "85.50", Description: "d", Category: "Art", ImageURL: "u"},    // no name
		{Name: "Tea", Description: "d", Category: "Art", ImageURL: "u"},       // no price
		{Name: "Tea", Price: "-1", Description: "d", Category: "Art", ImageURL: "u"},
		{Name: "Tea", Price: "85.50", Category: "Art", ImageURL: "u"},         // no description
		{Name: "Tea", Price: "85.50", Description: "d", ImageURL: "u"},        // no category
		{Name: "Tea", Price: "85.50", Description: "d", Category: "Gadgets", ImageURL: "u"},
		{Name: "Tea", Price: "85.50", Description: "d", Category: "Art"},      // no image
	}
	for i, in := range cases {
		if _, err := auth.Submit(in, "SME Owner"); !errors.Is(err, services.ErrIncomplete) {
			t.Fatalf("case %d: want ErrIncomplete, got %v", i, err)
		}
	}

	after, _ := catalog.All()
	if len(after) != len(before) {
		t.Fatal("rejected submissions must not mutate the catalog")
	}

	p, err := auth.Submit(services.SubmitInput{
		Name: "Tea", Price: "85.50", Description: "d", Category: "Art", ImageURL: "u",
	}, "SME Owner")
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 85.50 || p.Category != domain.CategoryArt {
		t.Fatalf("submitted fields not carried through: %+v", p)
	}
}

func TestAuthoringGenerateRequiresNameAndImage(t *testing.T) {
	auth := services.NewAuthoringService(newCatalogService(t), stubGen{text: "ok"})
	ctx := context.Background()
	if _, err := auth.Generate(ctx, "", []byte{1}, "image/png"); !errors.Is(err, services.ErrGenerationInput) {
		t.Fatalf("want ErrGenerationInput without a name, got %v", err)
	}
	if _, err := auth.Generate(ctx, "Tea", nil, ""); !errors.Is(err, services.ErrGenerationInput) {
		t.Fatalf("want ErrGenerationInput without an image, got %v", err)
	}
	if text, err := auth.Generate(ctx, "Tea", []byte{1}, "image/png"); err != nil || text != "ok" {
		t.Fatalf("valid inputs should pass through to the generator, got %q %v", text, err)
	}
}

func TestAuthoringGenerateErrorPassesThrough(t *testing.T) {
	want := errors.New("service unavailable")
	auth := services.NewAuthoringService(newCatalogService(t), stubGen{err: want})
	if _, err := auth.Generate(context.Background(), "Tea", []byte{1}, "image/png"); !errors.Is(err, want) {
		t.Fatalf("generator error should pass through, got %v", err)
	}
}
