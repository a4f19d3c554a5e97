package render

import (
	"encoding/json"

	"product-slider-backend/internal/sliderconfig"
)

// WidgetConfig mirrors the JSON shape the front-end carousel reads from the
// container's data attribute. Autoplay, pagination and navigation are either
// the literal false or an options object, which is why they are interface{}.
type WidgetConfig struct {
	SlidesPerView int                `json:"slidesPerView"`
	SpaceBetween  int                `json:"spaceBetween"`
	Speed         int                `json:"speed"`
	Loop          bool               `json:"loop"`
	Autoplay      interface{}        `json:"autoplay"`
	Pagination    interface{}        `json:"pagination"`
	Navigation    interface{}        `json:"navigation"`
	Breakpoints   map[int]Breakpoint `json:"breakpoints"`
}

type Breakpoint struct {
	SlidesPerView int `json:"slidesPerView"`
	SpaceBetween  int `json:"spaceBetween"`
}

type autoplayOptions struct {
	Delay                int  `json:"delay"`
	DisableOnInteraction bool `json:"disableOnInteraction"`
}

type paginationOptions struct {
	El             string `json:"el"`
	Clickable      bool   `json:"clickable"`
	Type           string `json:"type"`
	DynamicBullets bool   `json:"dynamicBullets,omitempty"`
}

type navigationOptions struct {
	NextEl string `json:"nextEl"`
	PrevEl string `json:"prevEl"`
}

// NewWidgetConfig maps the resolved slider settings onto the carousel
// options. The mobile-first base shows one slide; tablet and desktop
// breakpoints widen it.
func NewWidgetConfig(cfg sliderconfig.Config) WidgetConfig {
	w := WidgetConfig{
		SlidesPerView: 1,
		SpaceBetween:  cfg.SlideGap,
		Speed:         cfg.TransitionSpeed,
		Loop:          cfg.Loop,
		Autoplay:      false,
		Pagination:    false,
		Navigation:    false,
		Breakpoints: map[int]Breakpoint{
			640:  {SlidesPerView: 2, SpaceBetween: cfg.SlideGap},
			768:  {SlidesPerView: 3, SpaceBetween: cfg.SlideGap},
			1024: {SlidesPerView: 4, SpaceBetween: cfg.SlideGap},
		},
	}

	if cfg.Autoplay {
		w.Autoplay = autoplayOptions{Delay: cfg.AutoplaySpeed, DisableOnInteraction: false}
	}

	switch cfg.PaginationStyle {
	case "dots":
		w.Pagination = paginationOptions{El: ".swiper-pagination", Clickable: true, Type: "bullets", DynamicBullets: true}
	case "progress-bar":
		w.Pagination = paginationOptions{El: ".swiper-pagination", Clickable: true, Type: "progressbar"}
	case "fraction":
		w.Pagination = paginationOptions{El: ".swiper-pagination", Clickable: true, Type: "fraction"}
	}

	if cfg.ShowArrows {
		w.Navigation = navigationOptions{NextEl: ".swiper-button-next", PrevEl: ".swiper-button-prev"}
	}

	return w
}

// JSON serializes the widget config for embedding in a data attribute.
func (w WidgetConfig) JSON() string {
	encoded, err := json.Marshal(w)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
