package render

import (
	"strings"
	"testing"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/slides"
)

func productSlide(p *models.Product) slides.Slide {
	return slides.Slide{Kind: slides.KindProduct, Product: p}
}

func customSlide(s *models.CustomSlide) slides.Slide {
	return slides.Slide{Kind: slides.KindCustom, Custom: s}
}

func sampleProduct() *models.Product {
	return &models.Product{
		ID:               11,
		Name:             "Walnut Desk",
		Permalink:        "https://shop.example.com/walnut-desk",
		ImageURL:         "https://cdn.example.com/desk.jpg",
		Price:            250,
		RegularPrice:     250,
		ShortDescription: "<p>Solid walnut.</p>",
		AverageRating:    4,
	}
}

func TestRenderGatesProductPartsByFlags(t *testing.T) {
	cfg := baseConfig()
	cfg.ShowTitle = false
	cfg.ShowPrice = false
	cfg.ShowDescription = true
	cfg.ShowRating = true

	result := Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})

	if strings.Contains(result.Markup, "ps-title") {
		t.Fatalf("expected title suppressed:\n%s", result.Markup)
	}
	if strings.Contains(result.Markup, "ps-price") {
		t.Fatalf("expected price suppressed:\n%s", result.Markup)
	}
	if !strings.Contains(result.Markup, "Solid walnut.") {
		t.Fatalf("expected description rendered:\n%s", result.Markup)
	}
	if !strings.Contains(result.Markup, "ps-rating") {
		t.Fatalf("expected rating rendered:\n%s", result.Markup)
	}
}

func TestRenderSaleBadgeAndPriceMarkup(t *testing.T) {
	product := sampleProduct()
	product.Price = 199

	result := Render(1, baseConfig(), []slides.Slide{productSlide(product)})

	if !strings.Contains(result.Markup, "ps-sale-badge") {
		t.Fatalf("expected sale badge for discounted product")
	}
	if !strings.Contains(result.Markup, "<del>250.00</del>") || !strings.Contains(result.Markup, "<ins>199.00</ins>") {
		t.Fatalf("expected struck regular price, got:\n%s", result.Markup)
	}

	regular := Render(1, baseConfig(), []slides.Slide{productSlide(sampleProduct())})
	if strings.Contains(regular.Markup, "ps-sale-badge") {
		t.Fatalf("expected no badge at full price")
	}
}

func TestRenderClickableImageWrapsLink(t *testing.T) {
	cfg := baseConfig()
	result := Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})
	if !strings.Contains(result.Markup, `<a class="ps-image-link" href="https://shop.example.com/walnut-desk">`) {
		t.Fatalf("expected linked image:\n%s", result.Markup)
	}

	cfg.ClickableImage = false
	result = Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})
	if strings.Contains(result.Markup, "ps-image-link") {
		t.Fatalf("expected plain image when not clickable:\n%s", result.Markup)
	}
}

func TestRenderCustomSlideFragment(t *testing.T) {
	slide := &models.CustomSlide{
		ImageURL: "https://cdn.example.com/banner.jpg",
		URL:      "https://shop.example.com/sale",
		Title:    "Spring Sale",
	}

	result := Render(1, baseConfig(), []slides.Slide{customSlide(slide)})

	if !strings.Contains(result.Markup, "ps-slide--custom") {
		t.Fatalf("expected custom slide class:\n%s", result.Markup)
	}
	if !strings.Contains(result.Markup, `href="https://shop.example.com/sale"`) {
		t.Fatalf("expected slide link:\n%s", result.Markup)
	}
	if !strings.Contains(result.Markup, "Spring Sale") {
		t.Fatalf("expected slide title:\n%s", result.Markup)
	}
}

func TestRenderCustomSlideLinkHonorsClickableImage(t *testing.T) {
	slide := &models.CustomSlide{
		ImageURL: "https://cdn.example.com/banner.jpg",
		URL:      "https://shop.example.com/promo",
	}
	cfg := baseConfig()
	cfg.ClickableImage = false

	result := Render(1, cfg, []slides.Slide{customSlide(slide)})

	if strings.Contains(result.Markup, "ps-image-link") {
		t.Fatalf("expected no link when clickable images are off:\n%s", result.Markup)
	}
	if !strings.Contains(result.Markup, `src="https://cdn.example.com/banner.jpg"`) {
		t.Fatalf("expected slide image kept:\n%s", result.Markup)
	}
}

func TestRenderEscapesUntrustedText(t *testing.T) {
	product := sampleProduct()
	product.Name = `<img src=x onerror=alert(1)>`

	result := Render(1, baseConfig(), []slides.Slide{productSlide(product)})

	if strings.Contains(result.Markup, "<img src=x") {
		t.Fatalf("expected product name escaped:\n%s", result.Markup)
	}
}

func TestRenderOmitsNavWhenDisabled(t *testing.T) {
	cfg := baseConfig()
	cfg.ShowArrows = false
	cfg.PaginationStyle = "none"

	result := Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})

	if strings.Contains(result.Markup, "swiper-button-next") {
		t.Fatalf("expected arrows omitted:\n%s", result.Markup)
	}
	if strings.Contains(result.Markup, "swiper-pagination") {
		t.Fatalf("expected pagination element omitted:\n%s", result.Markup)
	}
}

func TestRenderHeadingOnlyWhenConfigured(t *testing.T) {
	cfg := baseConfig()
	result := Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})
	if strings.Contains(result.Markup, "ps-heading") {
		t.Fatalf("expected no heading by default:\n%s", result.Markup)
	}

	cfg.Heading = "New Arrivals"
	cfg.HeadingTransform = "uppercase"
	result = Render(1, cfg, []slides.Slide{productSlide(sampleProduct())})
	if !strings.Contains(result.Markup, "New Arrivals") || !strings.Contains(result.Markup, "text-transform:uppercase;") {
		t.Fatalf("expected styled heading:\n%s", result.Markup)
	}
}

func TestInlineCSSScopesAndAppendsCustomCSSLast(t *testing.T) {
	cfg := baseConfig()
	cfg.CustomCSS = ".mine{color:red}"

	css := InlineCSS(7, cfg)

	if !strings.Contains(css, ".ps-slider-7{") {
		t.Fatalf("expected scoped root rule:\n%s", css)
	}
	if !strings.HasSuffix(css, ".mine{color:red}") {
		t.Fatalf("expected custom css appended last:\n%s", css)
	}
	if !strings.Contains(css, "background-color:"+DarkenColor(cfg.ButtonColor, 15)) {
		t.Fatalf("expected hover shade derived from button color:\n%s", css)
	}
}

func TestInlineCSSMaxWidthOnlyWhenSet(t *testing.T) {
	cfg := baseConfig()
	if strings.Contains(InlineCSS(1, cfg), "max-width") {
		t.Fatalf("expected no max-width by default")
	}

	cfg.MaxWidth = 1200
	if !strings.Contains(InlineCSS(1, cfg), "max-width:1200px;") {
		t.Fatalf("expected max-width rule when configured")
	}
}
