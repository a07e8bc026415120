package repository

import (
	"grillmanager/internal/models"

	"gorm.io/gorm"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(s *models.PromotionalSection) error {
	return r.db.Create(s).Error
}

func (r *SectionRepository) GetByID(id uint) (*models.PromotionalSection, error) {
	var s models.PromotionalSection
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive returns visible sections in display order.
func (r *SectionRepository) ListActive() ([]models.PromotionalSection, error) {
	var list []models.PromotionalSection
	err := r.db.Where("active = ?", true).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *SectionRepository) List() ([]models.PromotionalSection, error) {
	var list []models.PromotionalSection
	err := r.db.Find(&list).Error
	return list, err
}

func (r *SectionRepository) Update(s *models.PromotionalSection) error {
	return r.db.Save(s).Error
}

func (r *SectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.PromotionalSection{}, id).Error
}
