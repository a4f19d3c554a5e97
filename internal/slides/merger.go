// Package slides turns a slider's configured sources into the ordered list
// of renderable slides.
package slides

import (
	"fmt"

	"product-slider-backend/internal/models"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindCustom  Kind = "custom"
)

// Slide is a tagged union: exactly one of Product or Custom is set,
// according to Kind.
type Slide struct {
	Kind    Kind
	Product *models.Product
	Custom  *models.CustomSlide
}

// Catalog looks up renderable products. Implementations return (nil, nil)
// for products that are missing or not published; an error means the lookup
// itself failed.
type Catalog interface {
	ProductByID(id uint) (*models.Product, error)
}

// Merge resolves product IDs against the catalog and appends the custom
// slides. Product order follows the configured ID order; unresolvable
// products are skipped silently. The result is empty, never nil, when no
// source survives.
func Merge(catalog Catalog, productIDs []uint, customSlides []models.CustomSlide) ([]Slide, error) {
	merged := make([]Slide, 0, len(productIDs)+len(customSlides))

	for _, id := range productIDs {
		if catalog == nil {
			break
		}
		product, err := catalog.ProductByID(id)
		if err != nil {
			return nil, fmt.Errorf("look up product %d: %w", id, err)
		}
		if product == nil {
			continue
		}
		merged = append(merged, Slide{Kind: KindProduct, Product: product})
	}

	for i := range customSlides {
		if customSlides[i].ImageURL == "" {
			continue
		}
		merged = append(merged, Slide{Kind: KindCustom, Custom: &customSlides[i]})
	}

	return merged, nil
}
