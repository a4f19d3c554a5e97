package sliderconfig

import (
	"encoding/json"
	"strings"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/sanitize"
)

// Config is the fully defaulted, typed result of resolving a slider's
// settings. Downstream consumers never touch the raw key/value bag.
type Config struct {
	ProductIDs   []uint
	CustomSlides []models.CustomSlide

	// Display
	ShowImage        bool
	ShowTitle        bool
	ShowPrice        bool
	ShowDescription  bool
	ShowRating       bool
	ShowButton       bool
	ClickableImage   bool
	ButtonText       string
	Heading          string
	HeadingFontSize  int
	HeadingAlignment string
	HeadingColor     string
	HeadingTransform string

	// Design
	PrimaryColor    string
	SecondaryColor  string
	ButtonColor     string
	ButtonTextColor string
	BorderRadius    int
	SlideGap        int
	MaxWidth        int

	// Navigation
	PaginationStyle  string
	ShowArrows       bool
	ArrowStyle       string
	ArrowPosition    string
	ArrowColor       string
	ArrowBackground  string
	ArrowGradient    bool
	ArrowSize        int
	ProgressColor    string
	ProgressHeight   int
	ProgressPosition string

	// Behavior
	Autoplay        bool
	Loop            bool
	AutoplaySpeed   int
	TransitionSpeed int

	CustomCSS string
}

func (c Config) HasSlideSources() bool {
	return len(c.ProductIDs) > 0 || len(c.CustomSlides) > 0
}

// palette holds the defaults that deliberately differ between the published
// render path and the admin live preview. The divergence is a long-standing
// product decision; do not unify the two tables.
type palette struct {
	Primary      string
	Secondary    string
	Button       string
	BorderRadius int
}

var (
	publishedPalette = palette{Primary: "#000000", Secondary: "#ffffff", Button: "#0073aa", BorderRadius: 4}
	previewPalette   = palette{Primary: "#4A403A", Secondary: "#D4A373", Button: "#D4A373", BorderRadius: 8}
)

// MetaSource supplies the raw persisted settings for a slider.
type MetaSource interface {
	Values(sliderID uint) (map[string]string, error)
}

type Resolver struct {
	metas MetaSource
}

func NewResolver(metas MetaSource) *Resolver {
	return &Resolver{metas: metas}
}

// Resolve produces the configuration for a persisted slider. A missing
// slider or missing meta rows resolve to an all-defaults record; existence
// and publish-state checks belong to the caller.
func (r *Resolver) Resolve(sliderID uint) Config {
	values := map[string]string{}
	if r != nil && r.metas != nil {
		if stored, err := r.metas.Values(sliderID); err == nil && stored != nil {
			values = stored
		}
	}
	return buildConfig(values, publishedPalette)
}

// ResolveForm mirrors Resolve for a not-yet-persisted admin form payload.
// Used only by the live preview; note the preview palette.
func (r *Resolver) ResolveForm(form map[string]string) Config {
	if form == nil {
		form = map[string]string{}
	}
	return buildConfig(form, previewPalette)
}

// buildConfig encodes each field's default and boolean polarity
// individually. Most display flags default on (true unless "0"); opt-in
// behaviors default off (false unless "1").
func buildConfig(values map[string]string, pal palette) Config {
	return Config{
		ProductIDs:   parseProductIDs(values[MetaProducts]),
		CustomSlides: parseCustomSlides(values[MetaCustomSlides]),

		ShowImage:        flagOn(values, "show_image"),
		ShowTitle:        flagOn(values, "show_title"),
		ShowPrice:        flagOn(values, "show_price"),
		ShowDescription:  flagOff(values, "show_description"),
		ShowRating:       flagOff(values, "show_rating"),
		ShowButton:       flagOn(values, "show_button"),
		ClickableImage:   flagOn(values, "clickable_image"),
		ButtonText:       textOr(values, "button_text", "View Product"),
		Heading:          textOr(values, "slider_heading", ""),
		HeadingFontSize:  intIn(values, "heading_font_size", 24, 10, 72),
		HeadingAlignment: enumOr(values, "heading_alignment", "left"),
		HeadingColor:     colorOr(values, "heading_color", ""),
		HeadingTransform: enumOr(values, "heading_transform", "none"),

		PrimaryColor:    colorOr(values, "primary_color", pal.Primary),
		SecondaryColor:  colorOr(values, "secondary_color", pal.Secondary),
		ButtonColor:     colorOr(values, "button_color", pal.Button),
		ButtonTextColor: colorOr(values, "button_text_color", "#ffffff"),
		BorderRadius:    intIn(values, "border_radius", pal.BorderRadius, 0, 50),
		SlideGap:        intIn(values, "slide_gap", 20, 0, 100),
		MaxWidth:        intIn(values, "max_width", 0, 0, 3000),

		PaginationStyle:  enumOr(values, "pagination_style", "dots"),
		ShowArrows:       flagOn(values, "show_arrows"),
		ArrowStyle:       enumOr(values, "arrow_style", "default"),
		ArrowPosition:    enumOr(values, "arrow_position", "inside"),
		ArrowColor:       colorOr(values, "arrow_color", "#ffffff"),
		ArrowBackground:  colorOr(values, "arrow_bg_color", "#000000"),
		ArrowGradient:    flagOff(values, "nav_arrow_gradient"),
		ArrowSize:        intIn(values, "arrow_size", 40, 20, 100),
		ProgressColor:    colorOr(values, "progress_color", "#0073aa"),
		ProgressHeight:   intIn(values, "progress_height", 4, 2, 20),
		ProgressPosition: enumOr(values, "progress_position", "bottom"),

		Autoplay:        flagOff(values, "autoplay"),
		Loop:            flagOff(values, "loop"),
		AutoplaySpeed:   intIn(values, "autoplay_speed", 3000, 1000, 10000),
		TransitionSpeed: intIn(values, "transition_speed", 300, 100, 3000),

		CustomCSS: sanitize.CSS(values["custom_css"]),
	}
}

// flagOn implements the true-unless-"0" polarity.
func flagOn(values map[string]string, key string) bool {
	v, ok := values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return true
	}
	return v != "0"
}

// flagOff implements the false-unless-"1" polarity.
func flagOff(values map[string]string, key string) bool {
	return values[key] == "1"
}

func textOr(values map[string]string, key, def string) string {
	v, ok := values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return sanitize.Text(v)
}

func colorOr(values map[string]string, key, def string) string {
	return sanitize.HexColor(values[key], def)
}

func intIn(values map[string]string, key string, def, min, max int) int {
	v, ok := values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n := sanitize.Integer(v)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func enumOr(values map[string]string, key, def string) string {
	field, ok := FieldByKey(key)
	if !ok {
		return def
	}
	v := strings.TrimSpace(strings.ToLower(values[key]))
	for _, option := range field.Options {
		if v == option {
			return v
		}
	}
	return def
}

// parseProductIDs accepts both the persisted JSON array and the
// comma-separated form the preview submits.
func parseProductIDs(raw string) []uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []uint{}
	}

	var decoded []interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return sanitize.IntegerSlice(decoded)
	}

	parts := strings.Split(raw, ",")
	items := make([]interface{}, 0, len(parts))
	for _, part := range parts {
		items = append(items, part)
	}
	return sanitize.IntegerSlice(items)
}

// parseCustomSlides decodes the persisted JSON array. Slides without an
// image stay in the config so they still count as configured sources; the
// merge step drops them before rendering.
func parseCustomSlides(raw string) []models.CustomSlide {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var decoded []models.CustomSlide
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}

	slides := make([]models.CustomSlide, 0, len(decoded))
	for _, slide := range decoded {
		slides = append(slides, models.CustomSlide{
			ID:       slide.ID,
			ImageURL: sanitize.URL(slide.ImageURL),
			URL:      sanitize.URL(slide.URL),
			Title:    sanitize.Text(slide.Title),
		})
	}
	return slides
}
