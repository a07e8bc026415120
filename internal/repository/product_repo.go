package repository

import (
	"grillmanager/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List() ([]models.Product, error) {
	var list []models.Product
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ProductRepository) Update(p *models.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// ExistsInCategory reports whether any product references the category name.
func (r *ProductRepository) ExistsInCategory(categoryName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("category = ?", categoryName).Count(&count).Error
	return count > 0, err
}
