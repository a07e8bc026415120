package repository

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"

	"gorm.io/gorm"
)

// GenerateOrderID builds a business-facing order id: date plus a 3-digit
// random suffix. Not guaranteed globally unique beyond that.
func GenerateOrderID() string {
	return fmt.Sprintf("ORD-%s-%03d", time.Now().Format("20060102"), rand.Intn(1000))
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *models.Order) error {
	return r.db.Create(o).Error
}

// GetByOrderID resolves an order by its business id (ORD-...).
func (r *OrderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	var o models.Order
	err := r.db.Where("order_id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]models.Order, error) {
	var list []models.Order
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListNotCancelled returns every order except cancelled ones, for analytics.
func (r *OrderRepository) ListNotCancelled() ([]models.Order, error) {
	var list []models.Order
	err := r.db.Where("status <> ?", domain.OrderStatusCancelled).Find(&list).Error
	return list, err
}

func (r *OrderRepository) Update(o *models.Order) error {
	return r.db.Save(o).Error
}
