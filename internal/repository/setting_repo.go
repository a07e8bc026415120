package repository

import (
	"errors"

	"grillmanager/internal/models"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) GetByKey(key string) (*models.Setting, error) {
	var s models.Setting
	err := r.db.Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var list []models.Setting
	err := r.db.Order("key ASC").Find(&list).Error
	return list, err
}

func (r *SettingRepository) Create(s *models.Setting) error {
	return r.db.Create(s).Error
}

func (r *SettingRepository) Update(s *models.Setting) error {
	return r.db.Save(s).Error
}
