package service

import (
	"errors"

	"gorm.io/gorm"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/render"
	"product-slider-backend/internal/repository"
	"product-slider-backend/internal/sliderconfig"
)

// RenderService wires storage into the render engine. The adapters below
// translate gorm's not-found errors into the (nil, nil) convention the
// engine and merger expect, so only infrastructure failures surface as
// errors.
type RenderService struct {
	engine *render.Engine
}

func NewRenderService(sliders repository.SliderRepository, metas repository.SliderMetaRepository, products repository.ProductRepository) *RenderService {
	resolver := sliderconfig.NewResolver(metas)
	engine := render.NewEngine(
		&sliderLookup{repo: sliders},
		resolver,
		&productCatalog{repo: products},
	)
	return &RenderService{engine: engine}
}

func (s *RenderService) Render(rawID string, canEdit bool) (render.State, string) {
	return s.engine.Render(rawID, canEdit)
}

func (s *RenderService) Preview(form map[string]string) (string, error) {
	return s.engine.RenderPreview(form)
}

type sliderLookup struct {
	repo repository.SliderRepository
}

func (l *sliderLookup) SliderByID(id uint) (*models.Slider, error) {
	slider, err := l.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return slider, nil
}

// productCatalog hides drafts and deleted products from the render path; a
// product in any state other than publish simply does not exist here.
type productCatalog struct {
	repo repository.ProductRepository
}

func (c *productCatalog) ProductByID(id uint) (*models.Product, error) {
	product, err := c.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if product.Status != "publish" {
		return nil, nil
	}
	return product, nil
}
