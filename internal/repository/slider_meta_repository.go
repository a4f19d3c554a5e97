package repository

import (
	"product-slider-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SliderMetaRepository interface {
	Values(sliderID uint) (map[string]string, error)
	Set(sliderID uint, key, value string) error
	SetAll(sliderID uint, values map[string]string) error
	DeleteAll(sliderID uint) error
}

type sliderMetaRepository struct {
	db *gorm.DB
}

func NewSliderMetaRepository(db *gorm.DB) SliderMetaRepository {
	return &sliderMetaRepository{db: db}
}

func (r *sliderMetaRepository) Values(sliderID uint) (map[string]string, error) {
	var metas []models.SliderMeta
	if err := r.db.Where("slider_id = ?", sliderID).Find(&metas).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(metas))
	for _, meta := range metas {
		values[meta.Key] = meta.Value
	}
	return values, nil
}

func (r *sliderMetaRepository) Set(sliderID uint, key, value string) error {
	meta := &models.SliderMeta{SliderID: sliderID, Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slider_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
	}).Create(meta).Error
}

func (r *sliderMetaRepository) SetAll(sliderID uint, values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			meta := &models.SliderMeta{SliderID: sliderID, Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slider_id"}, {Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
			}).Create(meta).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sliderMetaRepository) DeleteAll(sliderID uint) error {
	return r.db.Where("slider_id = ?", sliderID).Delete(&models.SliderMeta{}).Error
}
