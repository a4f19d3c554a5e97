// Package sanitize gatekeeps every value crossing the trust boundary: admin
// form submissions and persisted meta values are run through these functions
// before they reach rendering. Every function is total; malformed input maps
// to a safe default, never to an error.
package sanitize

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	richPolicy   = newRichPolicy()

	hexColorRe    = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	scriptBlockRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	jsProtoRe     = regexp.MustCompile(`(?i)javascript\s*:`)
	vbProtoRe     = regexp.MustCompile(`(?i)vbscript\s*:`)
	dataProtoRe   = regexp.MustCompile(`(?i)data\s*:`)
)

var dangerousSchemes = []string{"javascript", "data", "vbscript"}

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "strong", "em", "b", "i", "u", "br", "ul", "ol", "li")
	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowAttrs("class").OnElements("span")
	p.AllowElements("span")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}

// Text strips all markup and returns trimmed plain text.
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// HTML strips all tags except the display allow-list used for product
// descriptions and slide captions.
func HTML(s string) string {
	return richPolicy.Sanitize(s)
}

// URL rejects dangerous schemes outright and returns the empty string for
// anything that does not parse as a URL.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lower, scheme+":") {
			return ""
		}
	}

	if _, err := url.Parse(s); err != nil {
		return ""
	}
	return s
}

// Integer coerces any value to a non-negative integer. Non-numeric input and
// negatives both collapse to 0; fractional values truncate toward zero.
func Integer(value interface{}) int {
	n := 0
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint:
		n = int(v)
	case float64:
		n = int(v)
	case bool:
		if v {
			n = 1
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if parsed, err := strconv.Atoi(trimmed); err == nil {
			n = parsed
		} else if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			n = int(f)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// Boolean accepts bools, numbers and the usual truthy strings.
func Boolean(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	default:
		return false
	}
}

// HexColor validates #RGB / #RRGGBB after trimming and returns def verbatim
// on mismatch.
func HexColor(value, def string) string {
	value = strings.TrimSpace(value)
	if hexColorRe.MatchString(value) {
		return value
	}
	return def
}

// IntegerSlice maps each element through Integer, drops zeros and re-indexes.
// Order is preserved; duplicates are not removed.
func IntegerSlice(values []interface{}) []uint {
	result := make([]uint, 0, len(values))
	for _, v := range values {
		if n := Integer(v); n > 0 {
			result = append(result, uint(n))
		}
	}
	return result
}

// CSS strips markup and the javascript:/vbscript:/data: protocol substrings.
// This is a denylist, not a CSS parser; it does not validate syntax.
func CSS(s string) string {
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = jsProtoRe.ReplaceAllString(s, "")
	s = vbProtoRe.ReplaceAllString(s, "")
	s = dataProtoRe.ReplaceAllString(s, "")
	return s
}

// Config is the generic slider preset accepted by the creation path.
type Config struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	SlidesVisible   int     `json:"slides_visible"`
	Autoplay        bool    `json:"autoplay"`
	Speed           int     `json:"speed"`
	BgColor         string  `json:"bg_color"`
	ProductIDs      []uint  `json:"product_ids"`
	LinkURL         string  `json:"link_url"`
	CustomCSS       string  `json:"custom_css"`
	Loop            bool    `json:"loop"`
	Navigation      bool    `json:"navigation"`
	Pagination      bool    `json:"pagination"`
	LazyLoading     bool    `json:"lazy_loading"`
	TransitionSpeed int     `json:"transition_speed"`
}

// SliderConfig merges raw over a full default record, sanitizes every field
// and clamps numeric ranges. Any input yields a fully populated,
// internally consistent config; there is no error path.
func SliderConfig(raw map[string]interface{}) Config {
	cfg := Config{
		Title:           Text(stringVal(raw, "title", "")),
		Description:     HTML(stringVal(raw, "description", "")),
		SlidesVisible:   intVal(raw, "slides_visible", 3),
		Autoplay:        boolVal(raw, "autoplay", false),
		Speed:           intVal(raw, "speed", 300),
		BgColor:         HexColor(stringVal(raw, "bg_color", "#ffffff"), "#ffffff"),
		ProductIDs:      sliceVal(raw, "product_ids"),
		LinkURL:         URL(stringVal(raw, "link_url", "")),
		CustomCSS:       CSS(stringVal(raw, "custom_css", "")),
		Loop:            boolVal(raw, "loop", true),
		Navigation:      boolVal(raw, "navigation", true),
		Pagination:      boolVal(raw, "pagination", true),
		LazyLoading:     boolVal(raw, "lazy_loading", true),
		TransitionSpeed: intVal(raw, "transition_speed", 300),
	}

	cfg.SlidesVisible = clamp(cfg.SlidesVisible, 1, 6)
	cfg.Speed = clamp(cfg.Speed, 100, 10000)
	cfg.TransitionSpeed = clamp(cfg.TransitionSpeed, 100, 3000)

	return cfg
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func stringVal(raw map[string]interface{}, key, def string) string {
	v, ok := raw[key]
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func intVal(raw map[string]interface{}, key string, def int) int {
	v, ok := raw[key]
	if !ok {
		return def
	}
	return Integer(v)
}

func boolVal(raw map[string]interface{}, key string, def bool) bool {
	v, ok := raw[key]
	if !ok {
		return def
	}
	return Boolean(v)
}

func sliceVal(raw map[string]interface{}, key string) []uint {
	v, ok := raw[key]
	if !ok {
		return []uint{}
	}
	switch items := v.(type) {
	case []interface{}:
		return IntegerSlice(items)
	case []uint:
		converted := make([]interface{}, 0, len(items))
		for _, item := range items {
			converted = append(converted, item)
		}
		return IntegerSlice(converted)
	default:
		return []uint{}
	}
}
