package service

import (
	"errors"
	"fmt"
	"strings"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/repository"
	"product-slider-backend/internal/sanitize"
	"product-slider-backend/pkg/cache"
	"product-slider-backend/pkg/logger"
)

var (
	ErrSearchTermTooShort  = errors.New("search term must be at least 3 characters")
	ErrProductNameRequired = errors.New("product name is required")
)

const (
	searchTermMinLength = 3
	searchResultLimit   = 20
)

type ProductService struct {
	products repository.ProductRepository
	cache    *cache.Cache
}

func NewProductService(products repository.ProductRepository, c *cache.Cache) *ProductService {
	return &ProductService{products: products, cache: c}
}

// Search finds published products matching a free-text term. Results are
// {id, label} pairs for the admin picker, cached briefly since admins
// re-type the same prefixes.
func (s *ProductService) Search(term string) ([]models.ProductSearchResult, error) {
	term = strings.TrimSpace(term)
	if len(term) < searchTermMinLength {
		return nil, ErrSearchTermTooShort
	}

	cacheKey := strings.ToLower(term)
	if s.cache != nil {
		var cached []models.ProductSearchResult
		if err := s.cache.GetCachedProductSearch(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.Search(term, searchResultLimit)
	if err != nil {
		return nil, err
	}

	results := make([]models.ProductSearchResult, 0, len(products))
	for _, product := range products {
		results = append(results, models.ProductSearchResult{
			ID:    product.ID,
			Label: fmt.Sprintf("%s (ID: %d)", product.Name, product.ID),
		})
	}

	if s.cache != nil {
		_ = s.cache.CacheProductSearch(cacheKey, results)
	}

	return results, nil
}

// Create seeds a catalog record and clears cached search results so the new
// product is immediately visible to the admin picker.
func (s *ProductService) Create(req *models.CreateProductRequest) (*models.Product, error) {
	name := sanitize.Text(req.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = "publish"
	}

	product := &models.Product{
		Name:             name,
		Slug:             strings.ToLower(strings.TrimSpace(req.Slug)),
		Permalink:        sanitize.URL(req.Permalink),
		ImageURL:         sanitize.URL(req.ImageURL),
		Price:            req.Price,
		RegularPrice:     req.RegularPrice,
		ShortDescription: sanitize.HTML(req.ShortDescription),
		AverageRating:    req.AverageRating,
		Status:           status,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProductSearch(); err != nil {
			logger.Error(err, "Failed to invalidate product search cache", nil)
		}
	}

	return product, nil
}
