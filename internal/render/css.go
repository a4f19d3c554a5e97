package render

import (
	"fmt"
	"strings"

	"product-slider-backend/internal/sliderconfig"
)

const hoverDarkenPercent = 15

// InlineCSS emits the style rules for one slider instance, every selector
// qualified by the per-slider scope class so multiple sliders on one page do
// not cross-contaminate. The sanitized custom CSS is appended verbatim at
// the end so author rules win the cascade.
func InlineCSS(sliderID uint, cfg sliderconfig.Config) string {
	scope := fmt.Sprintf(".ps-slider-%d", sliderID)

	var sb strings.Builder

	sb.WriteString(scope + "{")
	sb.WriteString("--ps-primary:" + cfg.PrimaryColor + ";")
	sb.WriteString("--ps-secondary:" + cfg.SecondaryColor + ";")
	sb.WriteString("--ps-button:" + cfg.ButtonColor + ";")
	sb.WriteString("--ps-button-text:" + cfg.ButtonTextColor + ";")
	sb.WriteString(fmt.Sprintf("--ps-radius:%dpx;", cfg.BorderRadius))
	if cfg.MaxWidth > 0 {
		sb.WriteString(fmt.Sprintf("max-width:%dpx;margin-left:auto;margin-right:auto;", cfg.MaxWidth))
	}
	sb.WriteString("}")

	sb.WriteString(scope + " .ps-slide{")
	sb.WriteString("background-color:" + cfg.SecondaryColor + ";")
	sb.WriteString("color:" + cfg.PrimaryColor + ";")
	sb.WriteString("border-radius:var(--ps-radius);")
	sb.WriteString("}")

	if cfg.ShowButton {
		sb.WriteString(scope + " .ps-button{")
		sb.WriteString("background-color:" + cfg.ButtonColor + ";")
		sb.WriteString("color:" + cfg.ButtonTextColor + ";")
		sb.WriteString("border-radius:var(--ps-radius);")
		sb.WriteString("}")
		sb.WriteString(scope + " .ps-button:hover{")
		sb.WriteString("background-color:" + DarkenColor(cfg.ButtonColor, hoverDarkenPercent) + ";")
		sb.WriteString("}")
	}

	if cfg.ShowArrows {
		sb.WriteString(scope + " .swiper-button-next," + scope + " .swiper-button-prev{")
		sb.WriteString("color:" + cfg.ArrowColor + ";")
		if cfg.ArrowGradient {
			sb.WriteString("background:linear-gradient(135deg," + cfg.ArrowBackground + "," + DarkenColor(cfg.ArrowBackground, hoverDarkenPercent) + ");")
		} else {
			sb.WriteString("background-color:" + cfg.ArrowBackground + ";")
		}
		sb.WriteString(fmt.Sprintf("width:%dpx;height:%dpx;", cfg.ArrowSize, cfg.ArrowSize))
		sb.WriteString("}")
		sb.WriteString(scope + " .swiper-button-next:hover," + scope + " .swiper-button-prev:hover{")
		sb.WriteString("background-color:" + DarkenColor(cfg.ArrowBackground, hoverDarkenPercent) + ";")
		sb.WriteString("}")
	}

	switch cfg.PaginationStyle {
	case "dots":
		sb.WriteString(scope + " .swiper-pagination-bullet-active{")
		sb.WriteString("background-color:" + cfg.ButtonColor + ";")
		sb.WriteString("}")
	case "progress-bar":
		sb.WriteString(scope + " .swiper-pagination-progressbar{")
		sb.WriteString(fmt.Sprintf("height:%dpx;", cfg.ProgressHeight))
		if cfg.ProgressPosition == "top" {
			sb.WriteString("top:0;bottom:auto;")
		} else {
			sb.WriteString("top:auto;bottom:0;")
		}
		sb.WriteString("}")
		sb.WriteString(scope + " .swiper-pagination-progressbar-fill{")
		sb.WriteString("background-color:" + cfg.ProgressColor + ";")
		sb.WriteString("}")
	case "fraction":
		sb.WriteString(scope + " .swiper-pagination-fraction{")
		sb.WriteString("color:" + cfg.PrimaryColor + ";")
		sb.WriteString("}")
	}

	if css := strings.TrimSpace(cfg.CustomCSS); css != "" {
		sb.WriteString(css)
	}

	return sb.String()
}
