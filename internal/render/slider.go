package render

import (
	"fmt"
	"html/template"
	"strings"

	"product-slider-backend/internal/sanitize"
	"product-slider-backend/internal/slides"
	"product-slider-backend/internal/sliderconfig"
)

// Result is the rendered output for one slider: the markup fragment, the
// scoped style rules and the serialized carousel options. Fragment() joins
// them into the embeddable form.
type Result struct {
	Markup     string
	InlineCSS  string
	WidgetJSON string
}

// Fragment returns the complete embeddable HTML: scoped styles first, then
// the slider markup.
func (r Result) Fragment() string {
	var sb strings.Builder
	sb.WriteString("<style>")
	sb.WriteString(r.InlineCSS)
	sb.WriteString("</style>")
	sb.WriteString(r.Markup)
	return sb.String()
}

// Render turns a resolved configuration and slide list into output. It is a
// pure function of its inputs; existence and permission checks happen in the
// engine before it is called.
func Render(sliderID uint, cfg sliderconfig.Config, items []slides.Slide) Result {
	widget := NewWidgetConfig(cfg)
	widgetJSON := widget.JSON()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<div class="ps-slider ps-slider-%d" data-arrow-style="%s" data-arrow-position="%s">`,
		sliderID, template.HTMLEscapeString(cfg.ArrowStyle), template.HTMLEscapeString(cfg.ArrowPosition)))

	if heading := strings.TrimSpace(cfg.Heading); heading != "" {
		sb.WriteString(`<h2 class="ps-heading" style="` + headingStyle(cfg) + `">`)
		sb.WriteString(template.HTMLEscapeString(heading))
		sb.WriteString(`</h2>`)
	}

	sb.WriteString(`<div class="swiper ps-swiper" data-config="` + template.HTMLEscapeString(widgetJSON) + `">`)
	sb.WriteString(`<div class="swiper-wrapper">`)
	for _, item := range items {
		sb.WriteString(`<div class="swiper-slide">`)
		switch item.Kind {
		case slides.KindProduct:
			sb.WriteString(renderProductSlide(cfg, item))
		case slides.KindCustom:
			sb.WriteString(renderCustomSlide(cfg, item))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	if cfg.ShowArrows {
		sb.WriteString(`<div class="swiper-button-prev"></div>`)
		sb.WriteString(`<div class="swiper-button-next"></div>`)
	}
	if cfg.PaginationStyle != "none" {
		sb.WriteString(`<div class="swiper-pagination"></div>`)
	}

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return Result{
		Markup:     sb.String(),
		InlineCSS:  InlineCSS(sliderID, cfg),
		WidgetJSON: widgetJSON,
	}
}

func headingStyle(cfg sliderconfig.Config) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("font-size:%dpx;", cfg.HeadingFontSize))
	sb.WriteString("text-align:" + cfg.HeadingAlignment + ";")
	if cfg.HeadingTransform != "none" {
		sb.WriteString("text-transform:" + cfg.HeadingTransform + ";")
	}
	if cfg.HeadingColor != "" {
		sb.WriteString("color:" + cfg.HeadingColor + ";")
	}
	return sb.String()
}

func renderProductSlide(cfg sliderconfig.Config, item slides.Slide) string {
	product := item.Product
	if product == nil {
		return ""
	}

	name := template.HTMLEscapeString(product.Name)
	permalink := template.HTMLEscapeString(product.Permalink)

	var sb strings.Builder
	sb.WriteString(`<div class="ps-slide ps-slide--product">`)

	if product.OnSale() {
		sb.WriteString(`<span class="ps-sale-badge">Sale</span>`)
	}

	if cfg.ShowImage && product.ImageURL != "" {
		img := `<img class="ps-image" src="` + template.HTMLEscapeString(product.ImageURL) + `" alt="` + name + `" loading="lazy" />`
		if cfg.ClickableImage && product.Permalink != "" {
			sb.WriteString(`<a class="ps-image-link" href="` + permalink + `">` + img + `</a>`)
		} else {
			sb.WriteString(img)
		}
	}

	if cfg.ShowTitle {
		sb.WriteString(`<h3 class="ps-title">` + name + `</h3>`)
	}

	if cfg.ShowRating && product.AverageRating > 0 {
		sb.WriteString(renderRating(product.AverageRating))
	}

	if cfg.ShowPrice {
		sb.WriteString(renderPrice(product.Price, product.RegularPrice, product.OnSale()))
	}

	if cfg.ShowDescription && product.ShortDescription != "" {
		sb.WriteString(`<div class="ps-description">` + sanitize.HTML(product.ShortDescription) + `</div>`)
	}

	if cfg.ShowButton && product.Permalink != "" {
		sb.WriteString(`<a class="ps-button" href="` + permalink + `">`)
		sb.WriteString(template.HTMLEscapeString(cfg.ButtonText))
		sb.WriteString(`</a>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func renderCustomSlide(cfg sliderconfig.Config, item slides.Slide) string {
	slide := item.Custom
	if slide == nil || slide.ImageURL == "" {
		return ""
	}

	title := template.HTMLEscapeString(slide.Title)
	alt := title
	if alt == "" {
		alt = "Slide"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="ps-slide ps-slide--custom">`)

	img := `<img class="ps-image" src="` + template.HTMLEscapeString(slide.ImageURL) + `" alt="` + alt + `" loading="lazy" />`
	if cfg.ClickableImage && slide.URL != "" {
		sb.WriteString(`<a class="ps-image-link" href="` + template.HTMLEscapeString(slide.URL) + `">` + img + `</a>`)
	} else {
		sb.WriteString(img)
	}

	if slide.Title != "" {
		sb.WriteString(`<h3 class="ps-title">` + title + `</h3>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func renderPrice(price, regular float64, onSale bool) string {
	if onSale {
		return fmt.Sprintf(`<div class="ps-price"><del>%.2f</del> <ins>%.2f</ins></div>`, regular, price)
	}
	return fmt.Sprintf(`<div class="ps-price">%.2f</div>`, price)
}

// renderRating rounds to the nearest whole star out of five.
func renderRating(rating float64) string {
	filled := int(rating + 0.5)
	if filled > 5 {
		filled = 5
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<div class="ps-rating" aria-label="Rated %.1f out of 5">`, rating))
	for i := 0; i < 5; i++ {
		if i < filled {
			sb.WriteString("★")
		} else {
			sb.WriteString("☆")
		}
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
