package repository

import (
	"errors"

	"product-slider-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get returns the stored value and whether the key exists. A missing key is
// not an error; callers substitute their own default.
func (r *settingRepository) Get(key string) (string, bool, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (r *settingRepository) Set(key, value string) error {
	setting := &models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
	}).Create(setting).Error
}

func (r *settingRepository) Delete(key string) error {
	return r.db.Delete(&models.Setting{}, "key = ?", key).Error
}
