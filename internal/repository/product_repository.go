package repository

import (
	"product-slider-backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	Search(term string, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return &product, err
}

func (r *productRepository) Search(term string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("status = ?", "publish").
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
