package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/repository"
	"product-slider-backend/internal/sanitize"
	"product-slider-backend/internal/sliderconfig"
)

var ErrSliderNotFound = errors.New("slider not found")

const (
	settingDefaultAutoplay = "default_autoplay"
	settingDefaultLoop     = "default_loop"
	settingDefaultSpeed    = "default_speed"
)

type SliderService struct {
	sliders  repository.SliderRepository
	metas    repository.SliderMetaRepository
	settings repository.SettingRepository
}

func NewSliderService(sliders repository.SliderRepository, metas repository.SliderMetaRepository, settings repository.SettingRepository) *SliderService {
	return &SliderService{sliders: sliders, metas: metas, settings: settings}
}

// GlobalDefaults reads the store-wide initial values for new sliders.
// Missing keys fall back to the shipped defaults.
func (s *SliderService) GlobalDefaults() (models.GlobalDefaults, error) {
	defaults := models.GlobalDefaults{Autoplay: false, Loop: false, Speed: 3000}

	if value, ok, err := s.settings.Get(settingDefaultAutoplay); err != nil {
		return defaults, err
	} else if ok {
		defaults.Autoplay = value == "1"
	}
	if value, ok, err := s.settings.Get(settingDefaultLoop); err != nil {
		return defaults, err
	} else if ok {
		defaults.Loop = value == "1"
	}
	if value, ok, err := s.settings.Get(settingDefaultSpeed); err != nil {
		return defaults, err
	} else if ok {
		if n := sanitize.Integer(value); n >= 1000 && n <= 10000 {
			defaults.Speed = n
		}
	}

	return defaults, nil
}

func (s *SliderService) UpdateGlobalDefaults(req models.UpdateGlobalDefaultsRequest) error {
	if err := s.settings.Set(settingDefaultAutoplay, boolToMeta(req.Autoplay)); err != nil {
		return err
	}
	if err := s.settings.Set(settingDefaultLoop, boolToMeta(req.Loop)); err != nil {
		return err
	}
	return s.settings.Set(settingDefaultSpeed, strconv.Itoa(req.Speed))
}

// Create makes a new draft slider. The store-wide defaults are applied here,
// at creation time only; they never influence later renders. An optional
// config preset is sanitized and seeds the initial settings.
func (s *SliderService) Create(req models.CreateSliderRequest) (*models.Slider, error) {
	title := strings.TrimSpace(sanitize.Text(req.Title))
	if title == "" {
		return nil, errors.New("title is required")
	}

	defaults, err := s.GlobalDefaults()
	if err != nil {
		return nil, err
	}

	slider := &models.Slider{Title: title, Status: models.SliderStatusDraft}
	if err := s.sliders.Create(slider); err != nil {
		return nil, err
	}

	seed := map[string]string{
		"autoplay":       boolToMeta(defaults.Autoplay),
		"loop":           boolToMeta(defaults.Loop),
		"autoplay_speed": strconv.Itoa(defaults.Speed),
	}

	if req.Config != nil {
		preset := sanitize.SliderConfig(req.Config)
		seed["autoplay"] = boolToMeta(preset.Autoplay)
		seed["loop"] = boolToMeta(preset.Loop)
		seed["transition_speed"] = strconv.Itoa(preset.TransitionSpeed)
		if preset.Title != "" {
			seed["slider_heading"] = preset.Title
		}
		if preset.CustomCSS != "" {
			seed["custom_css"] = preset.CustomCSS
		}
		if len(preset.ProductIDs) > 0 {
			if encoded, err := json.Marshal(preset.ProductIDs); err == nil {
				seed[sliderconfig.MetaProducts] = string(encoded)
			}
		}
	}

	if err := s.metas.SetAll(slider.ID, seed); err != nil {
		return nil, err
	}

	return slider, nil
}

// Save persists the admin form for a slider. Every scalar setting is
// sanitized per its schema entry; unknown keys are dropped at this boundary
// and never reach storage.
func (s *SliderService) Save(id uint, req models.SaveSliderRequest) error {
	slider, err := s.getSlider(id)
	if err != nil {
		return err
	}

	if title := strings.TrimSpace(sanitize.Text(req.Title)); title != "" && title != slider.Title {
		slider.Title = title
		if err := s.sliders.Update(slider); err != nil {
			return err
		}
	}

	values := make(map[string]string, len(req.Settings)+2)
	for _, field := range sliderconfig.Schema() {
		raw, ok := req.Settings[field.Key]
		if !ok {
			continue
		}
		values[field.Key] = sanitizeSetting(field, raw)
	}

	productIDs := sanitize.IntegerSlice(req.ProductIDs)
	if encoded, err := json.Marshal(productIDs); err == nil {
		values[sliderconfig.MetaProducts] = string(encoded)
	}

	slides := sanitizeCustomSlides(req.CustomSlides)
	if encoded, err := json.Marshal(slides); err == nil {
		values[sliderconfig.MetaCustomSlides] = string(encoded)
	}

	return s.metas.SetAll(id, values)
}

func (s *SliderService) Get(id uint) (*models.Slider, map[string]string, error) {
	slider, err := s.getSlider(id)
	if err != nil {
		return nil, nil, err
	}

	values, err := s.metas.Values(id)
	if err != nil {
		return nil, nil, err
	}

	return slider, values, nil
}

func (s *SliderService) List(page, limit int, status *string) ([]models.Slider, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.sliders.GetAll((page-1)*limit, limit, status)
}

func (s *SliderService) SetStatus(id uint, status string) error {
	if _, err := s.getSlider(id); err != nil {
		return err
	}
	return s.sliders.UpdateStatus(id, status)
}

func (s *SliderService) Delete(id uint) error {
	if _, err := s.getSlider(id); err != nil {
		return err
	}
	if err := s.metas.DeleteAll(id); err != nil {
		return err
	}
	return s.sliders.Delete(id)
}

func (s *SliderService) getSlider(id uint) (*models.Slider, error) {
	slider, err := s.sliders.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSliderNotFound
	}
	if err != nil {
		return nil, err
	}
	return slider, nil
}

func sanitizeSetting(field sliderconfig.Field, raw string) string {
	switch field.Kind {
	case sliderconfig.KindColor:
		return sanitize.HexColor(raw, field.Default)
	case sliderconfig.KindInt:
		n := sanitize.Integer(raw)
		if n < field.Min {
			n = field.Min
		}
		if n > field.Max {
			n = field.Max
		}
		return strconv.Itoa(n)
	case sliderconfig.KindBool:
		return boolToMeta(sanitize.Boolean(raw))
	case sliderconfig.KindEnum:
		value := strings.TrimSpace(strings.ToLower(raw))
		for _, option := range field.Options {
			if value == option {
				return value
			}
		}
		return field.Default
	case sliderconfig.KindCSS:
		return sanitize.CSS(raw)
	default:
		return sanitize.Text(raw)
	}
}

// sanitizeCustomSlides drops slides without an image and assigns ids to new
// entries.
func sanitizeCustomSlides(inputs []models.CustomSlideInput) []models.CustomSlide {
	slides := make([]models.CustomSlide, 0, len(inputs))
	for _, input := range inputs {
		imageURL := sanitize.URL(input.ImageURL)
		if imageURL == "" {
			continue
		}
		slides = append(slides, models.CustomSlide{
			ID:       uuid.NewString(),
			ImageURL: imageURL,
			URL:      sanitize.URL(input.URL),
			Title:    sanitize.Text(input.Title),
		})
	}
	return slides
}

func boolToMeta(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
