package render

import (
	"errors"
	"strings"
	"testing"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/sliderconfig"
)

type fakeSliderLookup struct {
	sliders map[uint]*models.Slider
	err     error
}

func (f *fakeSliderLookup) SliderByID(id uint) (*models.Slider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sliders[id], nil
}

type fakeMetaSource struct {
	values map[uint]map[string]string
}

func (f *fakeMetaSource) Values(sliderID uint) (map[string]string, error) {
	return f.values[sliderID], nil
}

type fakeCatalog struct {
	products map[uint]*models.Product
	err      error
}

func (f *fakeCatalog) ProductByID(id uint) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func newTestEngine(lookup *fakeSliderLookup, metas *fakeMetaSource, catalog *fakeCatalog) *Engine {
	if lookup == nil {
		lookup = &fakeSliderLookup{}
	}
	if metas == nil {
		metas = &fakeMetaSource{}
	}
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	return NewEngine(lookup, sliderconfig.NewResolver(metas), catalog)
}

func publishedSlider(id uint) *models.Slider {
	return &models.Slider{ID: id, Title: "Featured", Status: models.SliderStatusPublished}
}

func TestRenderRejectsInvalidIDs(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	for _, raw := range []string{"", "0", "abc", "-3"} {
		state, html := engine.Render(raw, false)
		if state != StateInvalidID {
			t.Fatalf("input %q: expected id-invalid, got %s", raw, state)
		}
		if html != "" {
			t.Fatalf("input %q: expected empty output for anonymous caller, got %q", raw, html)
		}
	}
}

func TestRenderShowsErrorsOnlyToEditors(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	_, anonymous := engine.Render("abc", false)
	_, editor := engine.Render("abc", true)

	if anonymous != "" {
		t.Fatalf("expected silent failure for anonymous caller, got %q", anonymous)
	}
	if !strings.Contains(editor, "ps-error") || !strings.Contains(editor, "Invalid slider ID.") {
		t.Fatalf("expected visible error for editor, got %q", editor)
	}
}

func TestRenderDraftSliderIsNotFound(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{
		4: {ID: 4, Status: models.SliderStatusDraft},
	}}
	engine := newTestEngine(lookup, nil, nil)

	state, html := engine.Render("4", true)
	if state != StateNotFound {
		t.Fatalf("expected not-found-or-unpublished for draft, got %s", state)
	}
	if !strings.Contains(html, "not found or not published") {
		t.Fatalf("unexpected editor message: %q", html)
	}
}

func TestRenderPublishedSliderWithoutSources(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{6: publishedSlider(6)}}
	engine := newTestEngine(lookup, nil, nil)

	state, _ := engine.Render("6", false)
	if state != StateNoSlidesConfigured {
		t.Fatalf("expected no-slides-configured, got %s", state)
	}
}

func TestRenderImagelessCustomSlidesYieldNoResolvedSlides(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{6: publishedSlider(6)}}
	metas := &fakeMetaSource{values: map[uint]map[string]string{
		6: {sliderconfig.MetaCustomSlides: `[{"image_url":"","title":"broken"}]`},
	}}
	engine := newTestEngine(lookup, metas, &fakeCatalog{})

	// The slide counts as configured, so the failure is stale content,
	// not a missing configuration.
	state, _ := engine.Render("6", false)
	if state != StateNoResolvedSlides {
		t.Fatalf("expected no-resolved-slides, got %s", state)
	}
}

func TestRenderStaleProductsYieldNoResolvedSlides(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{6: publishedSlider(6)}}
	metas := &fakeMetaSource{values: map[uint]map[string]string{
		6: {sliderconfig.MetaProducts: `[404]`},
	}}
	engine := newTestEngine(lookup, metas, &fakeCatalog{})

	state, _ := engine.Render("6", false)
	if state != StateNoResolvedSlides {
		t.Fatalf("expected no-resolved-slides, got %s", state)
	}
}

func TestRenderReadyEmitsSliderFragment(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{8: publishedSlider(8)}}
	metas := &fakeMetaSource{values: map[uint]map[string]string{
		8: {
			sliderconfig.MetaProducts: `[21]`,
			"slider_heading":          "Summer picks",
			"arrow_style":             "minimal",
		},
	}}
	catalog := &fakeCatalog{products: map[uint]*models.Product{
		21: {
			ID:            21,
			Name:          "Linen Shirt",
			Permalink:     "https://shop.example.com/linen-shirt",
			ImageURL:      "https://cdn.example.com/shirt.jpg",
			Price:         29,
			RegularPrice:  39,
			AverageRating: 4.5,
		},
	}}
	engine := newTestEngine(lookup, metas, catalog)

	state, html := engine.Render("8", false)
	if state != StateReady {
		t.Fatalf("expected ready, got %s", state)
	}
	for _, want := range []string{
		`ps-slider-8`,
		`data-arrow-style="minimal"`,
		`Summer picks`,
		`Linen Shirt`,
		`ps-sale-badge`,
		`data-config=`,
		`<style>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, html)
		}
	}
}

func TestRenderCatalogFailureIsSilentForPublic(t *testing.T) {
	lookup := &fakeSliderLookup{sliders: map[uint]*models.Slider{2: publishedSlider(2)}}
	metas := &fakeMetaSource{values: map[uint]map[string]string{
		2: {sliderconfig.MetaProducts: `[1]`},
	}}
	engine := newTestEngine(lookup, metas, &fakeCatalog{err: errors.New("timeout")})

	state, html := engine.Render("2", false)
	if state != StateNoResolvedSlides {
		t.Fatalf("expected no-resolved-slides on catalog failure, got %s", state)
	}
	if html != "" {
		t.Fatalf("expected silent public failure, got %q", html)
	}
}

func TestRenderPreviewUsesSentinelIDAndPreviewDefaults(t *testing.T) {
	catalog := &fakeCatalog{products: map[uint]*models.Product{
		3: {ID: 3, Name: "Mug", Permalink: "https://shop.example.com/mug", ImageURL: "https://cdn.example.com/mug.jpg", Price: 10},
	}}
	engine := newTestEngine(nil, nil, catalog)

	html, err := engine.RenderPreview(map[string]string{
		sliderconfig.MetaProducts: "3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "ps-slider-999999") {
		t.Fatalf("expected sentinel id in scope class, got %q", html)
	}
	if !strings.Contains(html, "#D4A373") {
		t.Fatalf("expected preview palette in styles, got %q", html)
	}
}

func TestRenderPreviewSurfacesFailures(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	if _, err := engine.RenderPreview(map[string]string{}); !errors.Is(err, ErrNoSlideSources) {
		t.Fatalf("expected ErrNoSlideSources, got %v", err)
	}

	failing := newTestEngine(nil, nil, &fakeCatalog{err: errors.New("timeout")})
	if _, err := failing.RenderPreview(map[string]string{sliderconfig.MetaProducts: "3"}); err == nil {
		t.Fatalf("expected catalog failure to surface in preview")
	}
}
