package render

import "testing"

func TestExpandHexDuplicatesShortDigits(t *testing.T) {
	if got := ExpandHex("#abc"); got != "#aabbcc" {
		t.Fatalf("expected #aabbcc, got %q", got)
	}
	if got := ExpandHex("#A1B2C3"); got != "#A1B2C3" {
		t.Fatalf("expected long form untouched, got %q", got)
	}
}

func TestDarkenColorTruncatesPerChannel(t *testing.T) {
	if got := DarkenColor("#ff0000", 10); got != "#e60000" {
		t.Fatalf("expected #e60000, got %q", got)
	}
	// 170-34=136, 187-37=150, 204-40=164
	if got := DarkenColor("#abc", 20); got != "#8896a4" {
		t.Fatalf("expected short form expanded before darkening, got %q", got)
	}
}

func TestDarkenColorFullPercentGoesBlack(t *testing.T) {
	if got := DarkenColor("#ffffff", 100); got != "#000000" {
		t.Fatalf("expected black, got %q", got)
	}
}

func TestDarkenColorZeroPercentIsIdentityModuloCase(t *testing.T) {
	if got := DarkenColor("#AABBCC", 0); got != "#aabbcc" {
		t.Fatalf("expected #aabbcc, got %q", got)
	}
}

func TestDarkenColorKeepsInvalidInput(t *testing.T) {
	if got := DarkenColor("tomato", 15); got != "tomato" {
		t.Fatalf("expected invalid input returned unchanged, got %q", got)
	}
}
