package sanitize

import (
	"reflect"
	"strings"
	"testing"
)

func TestHexColorAcceptsValidForms(t *testing.T) {
	if got := HexColor("#abc", "#ffffff"); got != "#abc" {
		t.Fatalf("expected short form to pass through, got %q", got)
	}
	if got := HexColor("  #A1B2C3  ", "#ffffff"); got != "#A1B2C3" {
		t.Fatalf("expected trimmed long form to pass through, got %q", got)
	}
}

func TestHexColorFallsBackToDefault(t *testing.T) {
	for _, input := range []string{"", "red", "#ab", "#abcd", "#ggg", "abc"} {
		if got := HexColor(input, "#123456"); got != "#123456" {
			t.Fatalf("input %q: expected default, got %q", input, got)
		}
	}
}

func TestHexColorIsIdempotent(t *testing.T) {
	inputs := []string{"#abc", "#A1B2C3", "nonsense", "", "#12345"}
	for _, input := range inputs {
		once := HexColor(input, "#ffffff")
		twice := HexColor(once, "#ffffff")
		if once != twice {
			t.Fatalf("input %q: first pass %q, second pass %q", input, once, twice)
		}
	}
}

func TestIntegerFloorsNegativesAndRejectsJunk(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
	}{
		{42, 42},
		{-5, 0},
		{"17", 17},
		{"  8  ", 8},
		{"not a number", 0},
		{3.9, 3},
		{-0.5, 0},
		{nil, 0},
		{true, 1},
	}
	for _, tc := range cases {
		if got := Integer(tc.in); got != tc.want {
			t.Fatalf("Integer(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestIntegerSliceDropsZerosAndPreservesOrder(t *testing.T) {
	got := IntegerSlice([]interface{}{1, "two", -3, "4", 0})
	want := []uint{1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestURLBlocksDangerousSchemes(t *testing.T) {
	for _, input := range []string{
		"javascript:alert(1)",
		"JaVaScRiPt:alert(1)",
		"data:text/html;base64,xxx",
		"vbscript:msgbox",
	} {
		if got := URL(input); got != "" {
			t.Fatalf("input %q: expected empty string, got %q", input, got)
		}
	}
}

func TestURLKeepsRegularURLs(t *testing.T) {
	input := "https://a.com/x?y=1"
	if got := URL(input); got != input {
		t.Fatalf("expected %q to survive, got %q", input, got)
	}
}

func TestBooleanCoercion(t *testing.T) {
	truthy := []interface{}{true, 1, "1", "true", "TRUE", "yes", "on", 2.0}
	for _, v := range truthy {
		if !Boolean(v) {
			t.Fatalf("expected %v to be truthy", v)
		}
	}
	falsy := []interface{}{false, 0, "0", "false", "", "off", "garbage", nil}
	for _, v := range falsy {
		if Boolean(v) {
			t.Fatalf("expected %v to be falsy", v)
		}
	}
}

func TestCSSStripsScriptsAndProtocols(t *testing.T) {
	got := CSS("<script>bad</script>.c{background:url(javascript:x)}")
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script tag to be stripped, got %q", got)
	}
	if strings.Contains(strings.ToLower(got), "javascript:") {
		t.Fatalf("expected javascript protocol to be stripped, got %q", got)
	}
	if !strings.Contains(got, ".c{") {
		t.Fatalf("expected CSS body to survive, got %q", got)
	}
}

func TestCSSHandlesWhitespaceAroundColon(t *testing.T) {
	got := CSS("a{background:url(javascript  :x)} b{color:red}")
	if strings.Contains(strings.ToLower(got), "javascript") {
		t.Fatalf("expected spaced protocol to be stripped, got %q", got)
	}
	if !strings.Contains(got, "b{color:red}") {
		t.Fatalf("expected unrelated rule to survive, got %q", got)
	}
}

func TestCSSKeepsChildCombinators(t *testing.T) {
	input := ".a > .b{color:red}"
	if got := CSS(input); got != input {
		t.Fatalf("expected combinator to survive, got %q", got)
	}
}

func TestHTMLAllowList(t *testing.T) {
	got := HTML(`<p>ok</p><script>alert(1)</script><span class="x">s</span>`)
	if strings.Contains(got, "script") {
		t.Fatalf("expected script to be removed, got %q", got)
	}
	if !strings.Contains(got, "<p>ok</p>") {
		t.Fatalf("expected paragraph to survive, got %q", got)
	}
	if !strings.Contains(got, `<span class="x">`) {
		t.Fatalf("expected span class to survive, got %q", got)
	}
}

func TestSliderConfigDefaultsAndClamps(t *testing.T) {
	cfg := SliderConfig(map[string]interface{}{})

	if cfg.SlidesVisible != 3 {
		t.Fatalf("expected default slides_visible 3, got %d", cfg.SlidesVisible)
	}
	if cfg.Speed != 300 || cfg.TransitionSpeed != 300 {
		t.Fatalf("expected default speeds 300/300, got %d/%d", cfg.Speed, cfg.TransitionSpeed)
	}
	if !cfg.Loop || !cfg.Navigation || !cfg.Pagination || !cfg.LazyLoading {
		t.Fatalf("expected loop/navigation/pagination/lazy to default on: %+v", cfg)
	}
	if cfg.Autoplay {
		t.Fatalf("expected autoplay to default off")
	}
	if cfg.BgColor != "#ffffff" {
		t.Fatalf("expected default bg color, got %q", cfg.BgColor)
	}

	clamped := SliderConfig(map[string]interface{}{
		"slides_visible":   99,
		"speed":            1,
		"transition_speed": 999999,
	})
	if clamped.SlidesVisible != 6 {
		t.Fatalf("expected slides_visible clamped to 6, got %d", clamped.SlidesVisible)
	}
	if clamped.Speed != 100 {
		t.Fatalf("expected speed clamped to 100, got %d", clamped.Speed)
	}
	if clamped.TransitionSpeed != 3000 {
		t.Fatalf("expected transition_speed clamped to 3000, got %d", clamped.TransitionSpeed)
	}
}

func TestSliderConfigIsIdempotent(t *testing.T) {
	once := SliderConfig(map[string]interface{}{})

	roundTrip := SliderConfig(map[string]interface{}{
		"title":            once.Title,
		"description":      once.Description,
		"slides_visible":   once.SlidesVisible,
		"autoplay":         once.Autoplay,
		"speed":            once.Speed,
		"bg_color":         once.BgColor,
		"product_ids":      once.ProductIDs,
		"link_url":         once.LinkURL,
		"custom_css":       once.CustomCSS,
		"loop":             once.Loop,
		"navigation":       once.Navigation,
		"pagination":       once.Pagination,
		"lazy_loading":     once.LazyLoading,
		"transition_speed": once.TransitionSpeed,
	})

	if !reflect.DeepEqual(once, roundTrip) {
		t.Fatalf("expected idempotent defaulting:\nonce:  %+v\ntwice: %+v", once, roundTrip)
	}
}

func TestSliderConfigSanitizesMaliciousInput(t *testing.T) {
	cfg := SliderConfig(map[string]interface{}{
		"title":       "<b>hi</b> there",
		"link_url":    "javascript:alert(1)",
		"custom_css":  "<script>x</script>a{color:red}",
		"product_ids": []interface{}{"3", 0, -1, 7},
	})

	if strings.Contains(cfg.Title, "<") {
		t.Fatalf("expected title markup stripped, got %q", cfg.Title)
	}
	if cfg.LinkURL != "" {
		t.Fatalf("expected dangerous link dropped, got %q", cfg.LinkURL)
	}
	if strings.Contains(cfg.CustomCSS, "script") {
		t.Fatalf("expected css script stripped, got %q", cfg.CustomCSS)
	}
	if !reflect.DeepEqual(cfg.ProductIDs, []uint{3, 7}) {
		t.Fatalf("expected product ids [3 7], got %v", cfg.ProductIDs)
	}
}
