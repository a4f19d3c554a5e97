package repository

import (
	"product-slider-backend/internal/models"

	"gorm.io/gorm"
)

type SliderRepository interface {
	Create(slider *models.Slider) error
	GetByID(id uint) (*models.Slider, error)
	GetAll(offset, limit int, status *string) ([]models.Slider, int64, error)
	Update(slider *models.Slider) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type sliderRepository struct {
	db *gorm.DB
}

func NewSliderRepository(db *gorm.DB) SliderRepository {
	return &sliderRepository{db: db}
}

func (r *sliderRepository) Create(slider *models.Slider) error {
	return r.db.Create(slider).Error
}

func (r *sliderRepository) GetByID(id uint) (*models.Slider, error) {
	var slider models.Slider
	err := r.db.First(&slider, id).Error
	return &slider, err
}

func (r *sliderRepository) GetAll(offset, limit int, status *string) ([]models.Slider, int64, error) {
	var sliders []models.Slider
	var total int64

	query := r.db.Model(&models.Slider{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&sliders).Error

	return sliders, total, err
}

func (r *sliderRepository) Update(slider *models.Slider) error {
	return r.db.Save(slider).Error
}

func (r *sliderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Slider{}).Where("id = ?", id).Update("status", status).Error
}

func (r *sliderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Slider{}, id).Error
}
