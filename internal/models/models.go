package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SliderStatusDraft     = "draft"
	SliderStatusPublished = "published"
	SliderStatusTrashed   = "trashed"
)

type Slider struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"type:varchar(32);default:'draft';index" json:"status"`

	Metas []SliderMeta `gorm:"foreignKey:SliderID" json:"-"`
}

func (s *Slider) IsPublished() bool {
	return s != nil && s.Status == SliderStatusPublished
}

// SliderMeta stores one configuration value per row. Array-valued settings
// (product ids, custom slides) are JSON-encoded into Value.
type SliderMeta struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SliderID uint   `gorm:"not null;uniqueIndex:idx_slider_meta_key,priority:1" json:"slider_id"`
	Key      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_slider_meta_key,priority:2" json:"key"`
	Value    string `gorm:"type:text" json:"value"`

	Slider Slider `gorm:"foreignKey:SliderID;constraint:OnDelete:CASCADE;" json:"-"`
}

type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name             string  `gorm:"not null" json:"name"`
	Slug             string  `gorm:"uniqueIndex;not null" json:"slug"`
	Permalink        string  `json:"permalink"`
	ImageURL         string  `json:"image_url"`
	Price            float64 `gorm:"not null;default:0" json:"price"`
	RegularPrice     float64 `gorm:"not null;default:0" json:"regular_price"`
	ShortDescription string  `gorm:"type:text" json:"short_description"`
	AverageRating    float64 `gorm:"default:0" json:"average_rating"`
	Status           string  `gorm:"type:varchar(32);default:'publish';index" json:"status"`
}

func (p *Product) OnSale() bool {
	return p != nil && p.RegularPrice > 0 && p.Price < p.RegularPrice
}

// CustomSlide is a manually curated slide. Slides without an image are never
// persisted or rendered.
type CustomSlide struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

// Setting holds a store-wide key/value option. Used for the defaults applied
// to newly created sliders only.
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// GlobalDefaults are the store-wide initial values for new sliders. They are
// injected into the creation path and never consulted at render time.
type GlobalDefaults struct {
	Autoplay bool `json:"autoplay"`
	Loop     bool `json:"loop"`
	Speed    int  `json:"speed"`
}

type ProductSearchResult struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}
