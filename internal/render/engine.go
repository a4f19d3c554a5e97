package render

import (
	"errors"
	"html/template"
	"strconv"
	"strings"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/slides"
	"product-slider-backend/internal/sliderconfig"
	"product-slider-backend/pkg/logger"
)

type State string

const (
	StateInvalidID          State = "id-invalid"
	StateNotFound           State = "not-found-or-unpublished"
	StateNoSlidesConfigured State = "no-slides-configured"
	StateNoResolvedSlides   State = "no-resolved-slides"
	StateReady              State = "ready"
)

// previewSliderID is the out-of-range placeholder used when rendering an
// unsaved admin form, which has no real id yet.
const previewSliderID uint = 999999

const (
	msgInvalidID  = "Invalid slider ID."
	msgNotFound   = "Slider not found or not published."
	msgNoSlides   = "No products or custom slides selected for this slider."
	msgNoResolved = "No valid slides found."
)

var (
	ErrNoSlideSources   = errors.New("no products or custom slides selected")
	ErrNoResolvedSlides = errors.New("no valid slides found")
)

// SliderLookup fetches slider entities. Implementations return (nil, nil)
// when the id does not exist.
type SliderLookup interface {
	SliderByID(id uint) (*models.Slider, error)
}

// Engine drives the public render path: id validation, entity lookup,
// configuration resolution, slide merging and markup emission.
type Engine struct {
	sliders  SliderLookup
	resolver *sliderconfig.Resolver
	catalog  slides.Catalog
}

func NewEngine(sliders SliderLookup, resolver *sliderconfig.Resolver, catalog slides.Catalog) *Engine {
	return &Engine{sliders: sliders, resolver: resolver, catalog: catalog}
}

// Render produces the HTML for an external-facing slider id. Error states
// yield a visible message only when the caller can edit sliders; anonymous
// callers get an empty string so configuration details never leak. A broken
// slider must never break the surrounding page, so nothing here returns an
// error.
func (e *Engine) Render(rawID string, canEdit bool) (State, string) {
	id := parseSliderID(rawID)
	if id == 0 {
		return StateInvalidID, errorFragment(msgInvalidID, canEdit)
	}

	slider, err := e.sliders.SliderByID(id)
	if err != nil {
		logger.Error(err, "Failed to load slider", map[string]interface{}{"slider_id": id})
		return StateNotFound, errorFragment(msgNotFound, canEdit)
	}
	if slider == nil || !slider.IsPublished() {
		return StateNotFound, errorFragment(msgNotFound, canEdit)
	}

	cfg := e.resolver.Resolve(id)
	if !cfg.HasSlideSources() {
		return StateNoSlidesConfigured, errorFragment(msgNoSlides, canEdit)
	}

	merged, err := slides.Merge(e.catalog, cfg.ProductIDs, cfg.CustomSlides)
	if err != nil {
		logger.Error(err, "Failed to resolve slides", map[string]interface{}{"slider_id": id})
		return StateNoResolvedSlides, errorFragment(msgNoResolved, canEdit)
	}
	if len(merged) == 0 {
		return StateNoResolvedSlides, errorFragment(msgNoResolved, canEdit)
	}

	return StateReady, Render(id, cfg, merged).Fragment()
}

// RenderPreview renders an unsaved admin form. The caller is always an
// authorized admin, so failures surface as errors instead of being
// swallowed.
func (e *Engine) RenderPreview(form map[string]string) (string, error) {
	cfg := e.resolver.ResolveForm(form)
	if !cfg.HasSlideSources() {
		return "", ErrNoSlideSources
	}

	merged, err := slides.Merge(e.catalog, cfg.ProductIDs, cfg.CustomSlides)
	if err != nil {
		return "", err
	}
	if len(merged) == 0 {
		return "", ErrNoResolvedSlides
	}

	return Render(previewSliderID, cfg, merged).Fragment(), nil
}

func parseSliderID(raw string) uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func errorFragment(msg string, canEdit bool) string {
	if !canEdit {
		return ""
	}
	return `<div class="ps-error">` + template.HTMLEscapeString(msg) + `</div>`
}
