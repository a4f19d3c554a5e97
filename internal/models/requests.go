package models

// CreateSliderRequest optionally carries a raw config preset; it is run
// through the sanitizer before any value is persisted.
type CreateSliderRequest struct {
	Title  string                 `json:"title" binding:"required,max=200"`
	Config map[string]interface{} `json:"config"`
}

// SaveSliderRequest carries the admin form for a slider. Settings is the raw
// key/value map exactly as submitted; sanitization happens in the save path,
// never in the binding layer.
type SaveSliderRequest struct {
	Title        string             `json:"title"`
	Settings     map[string]string  `json:"settings"`
	ProductIDs   []interface{}      `json:"product_ids"`
	CustomSlides []CustomSlideInput `json:"custom_slides"`
}

type CustomSlideInput struct {
	ImageURL string `json:"image_url"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

// CreateProductRequest seeds a catalog record. The catalog is normally
// synced from the host shop, so this surface exists for bootstrapping and
// fixtures rather than day-to-day editing.
type CreateProductRequest struct {
	Name             string  `json:"name" binding:"required,max=200"`
	Slug             string  `json:"slug" binding:"required,max=200"`
	Permalink        string  `json:"permalink" binding:"omitempty,url"`
	ImageURL         string  `json:"image_url" binding:"omitempty,url"`
	Price            float64 `json:"price" binding:"min=0"`
	RegularPrice     float64 `json:"regular_price" binding:"min=0"`
	ShortDescription string  `json:"short_description"`
	AverageRating    float64 `json:"average_rating" binding:"min=0,max=5"`
	Status           string  `json:"status" binding:"omitempty,oneof=publish draft"`
}

type UpdateSliderStatusRequest struct {
	Status string `json:"status" binding:"required,slider_status"`
}

// PreviewRequest is the unsaved admin form serialized as a flat key/value
// map. Product ids travel as a comma-separated string under "products" and
// custom slides as a JSON array under "custom_slides".
type PreviewRequest struct {
	Form map[string]string `json:"form" binding:"required"`
}

type UpdateGlobalDefaultsRequest struct {
	Autoplay bool `json:"autoplay"`
	Loop     bool `json:"loop"`
	Speed    int  `json:"speed" binding:"required,min=1000,max=10000"`
}
