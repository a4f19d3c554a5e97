package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"product-slider-backend/internal/models"
)

var validate *validator.Validate

func Init() {
	validate = validator.New()

	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slider_status", validateSliderStatus)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

func validateSliderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.SliderStatusDraft, models.SliderStatusPublished, models.SliderStatusTrashed:
		return true
	default:
		return false
	}
}
