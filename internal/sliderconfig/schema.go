package sliderconfig

// Meta keys for the two array-valued settings. Scalars are keyed by the
// Field.Key entries in the schema below.
const (
	MetaProducts     = "products"
	MetaCustomSlides = "custom_slides"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindColor
	KindInt
	KindBool
	KindEnum
	KindCSS
)

// Field describes one persisted scalar setting: its stable key, how raw
// values are sanitized, its published default and, for booleans, its
// polarity. Boolean polarity is a behavioral contract: default-on fields are
// true unless explicitly "0", default-off fields are false unless "1".
type Field struct {
	Key       string
	Kind      FieldKind
	Default   string
	Min       int
	Max       int
	Options   []string
	DefaultOn bool
}

var schema = []Field{
	// Display
	{Key: "slider_heading", Kind: KindText, Default: ""},
	{Key: "heading_font_size", Kind: KindInt, Default: "24", Min: 10, Max: 72},
	{Key: "heading_alignment", Kind: KindEnum, Default: "left", Options: []string{"left", "center", "right"}},
	{Key: "heading_color", Kind: KindColor, Default: ""},
	{Key: "heading_transform", Kind: KindEnum, Default: "none", Options: []string{"none", "uppercase", "capitalize"}},
	{Key: "button_text", Kind: KindText, Default: "View Product"},
	{Key: "show_image", Kind: KindBool, DefaultOn: true},
	{Key: "show_title", Kind: KindBool, DefaultOn: true},
	{Key: "show_price", Kind: KindBool, DefaultOn: true},
	{Key: "show_description", Kind: KindBool, DefaultOn: false},
	{Key: "show_rating", Kind: KindBool, DefaultOn: false},
	{Key: "show_button", Kind: KindBool, DefaultOn: true},
	{Key: "clickable_image", Kind: KindBool, DefaultOn: true},

	// Design
	{Key: "primary_color", Kind: KindColor, Default: "#000000"},
	{Key: "secondary_color", Kind: KindColor, Default: "#ffffff"},
	{Key: "button_color", Kind: KindColor, Default: "#0073aa"},
	{Key: "button_text_color", Kind: KindColor, Default: "#ffffff"},
	{Key: "border_radius", Kind: KindInt, Default: "4", Min: 0, Max: 50},
	{Key: "slide_gap", Kind: KindInt, Default: "20", Min: 0, Max: 100},
	{Key: "max_width", Kind: KindInt, Default: "0", Min: 0, Max: 3000},

	// Navigation
	{Key: "pagination_style", Kind: KindEnum, Default: "dots", Options: []string{"dots", "progress-bar", "fraction", "none"}},
	{Key: "show_arrows", Kind: KindBool, DefaultOn: true},
	{Key: "arrow_style", Kind: KindEnum, Default: "default", Options: []string{"default", "square", "rounded-square", "minimal", "themed"}},
	{Key: "arrow_position", Kind: KindEnum, Default: "inside", Options: []string{"inside", "outside", "center"}},
	{Key: "arrow_color", Kind: KindColor, Default: "#ffffff"},
	{Key: "arrow_bg_color", Kind: KindColor, Default: "#000000"},
	{Key: "nav_arrow_gradient", Kind: KindBool, DefaultOn: false},
	{Key: "arrow_size", Kind: KindInt, Default: "40", Min: 20, Max: 100},
	{Key: "progress_color", Kind: KindColor, Default: "#0073aa"},
	{Key: "progress_height", Kind: KindInt, Default: "4", Min: 2, Max: 20},
	{Key: "progress_position", Kind: KindEnum, Default: "bottom", Options: []string{"top", "bottom"}},

	// Behavior
	{Key: "autoplay", Kind: KindBool, DefaultOn: false},
	{Key: "loop", Kind: KindBool, DefaultOn: false},
	{Key: "autoplay_speed", Kind: KindInt, Default: "3000", Min: 1000, Max: 10000},
	{Key: "transition_speed", Kind: KindInt, Default: "300", Min: 100, Max: 3000},

	{Key: "custom_css", Kind: KindCSS, Default: ""},
}

// Schema returns the scalar setting definitions in persisted order.
func Schema() []Field {
	return schema
}

func FieldByKey(key string) (Field, bool) {
	for _, f := range schema {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
