package repository

import (
	"time"

	"grillmanager/internal/models"

	"gorm.io/gorm"
)

// BackupData is the full-dataset dump exchanged by the export/import flow.
type BackupData struct {
	Products            []models.Product            `json:"products"`
	Categories          []models.Category           `json:"categories"`
	RestaurantInfo      *models.Restaurant          `json:"restaurantInfo"`
	Orders              []models.Order              `json:"orders"`
	PromotionalSections []models.PromotionalSection `json:"promotionalSections"`
	ExportDate          time.Time                   `json:"exportDate"`
}

// BackupRepository handles the only multi-statement atomic flows in the
// system: full import and reset-to-defaults.
type BackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

func (r *BackupRepository) Export() (*BackupData, error) {
	data := &BackupData{ExportDate: time.Now()}
	if err := r.db.Find(&data.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.Find(&data.Categories).Error; err != nil {
		return nil, err
	}
	var rest models.Restaurant
	if err := r.db.First(&rest).Error; err == nil {
		data.RestaurantInfo = &rest
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := r.db.Find(&data.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Find(&data.PromotionalSections).Error; err != nil {
		return nil, err
	}
	return data, nil
}

// Import wipes every resource table and recreates the payload's records in a
// single transaction. Missing timestamps are regenerated; present ones are
// preserved.
func (r *BackupRepository) Import(data *BackupData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		now := time.Now()
		for i := range data.Categories {
			fillTimes(&data.Categories[i].CreatedAt, &data.Categories[i].UpdatedAt, now)
		}
		if len(data.Categories) > 0 {
			if err := tx.Create(&data.Categories).Error; err != nil {
				return err
			}
		}
		for i := range data.Products {
			fillTimes(&data.Products[i].CreatedAt, &data.Products[i].UpdatedAt, now)
		}
		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return err
			}
		}
		if data.RestaurantInfo != nil {
			fillTimes(&data.RestaurantInfo.CreatedAt, &data.RestaurantInfo.UpdatedAt, now)
			if err := tx.Create(data.RestaurantInfo).Error; err != nil {
				return err
			}
		}
		for i := range data.Orders {
			if data.Orders[i].OrderID == "" {
				data.Orders[i].OrderID = GenerateOrderID()
			}
			fillTimes(&data.Orders[i].CreatedAt, &data.Orders[i].UpdatedAt, now)
		}
		if len(data.Orders) > 0 {
			if err := tx.Create(&data.Orders).Error; err != nil {
				return err
			}
		}
		for i := range data.PromotionalSections {
			fillTimes(&data.PromotionalSections[i].CreatedAt, &data.PromotionalSections[i].UpdatedAt, now)
		}
		if len(data.PromotionalSections) > 0 {
			if err := tx.Create(&data.PromotionalSections).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset wipes every resource table and reseeds the fixed defaults.
// Running it twice yields the same state.
func (r *BackupRepository) Reset() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		categories := DefaultCategories()
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}
		products := DefaultProducts()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		return tx.Create(DefaultResetRestaurant()).Error
	})
}

func wipe(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Order{},
		&models.Product{},
		&models.Category{},
		&models.Restaurant{},
		&models.PromotionalSection{},
	} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func fillTimes(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Hambúrgueres", Description: "Nossos deliciosos hambúrgueres artesanais", Icon: "🍔"},
		{Name: "Bebidas", Description: "Refrigerantes, sucos e cervejas geladas", Icon: "🥤"},
		{Name: "Acompanhamentos", Description: "Batatas fritas, anéis de cebola e muito mais", Icon: "🍟"},
	}
}

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Hambúrguer Clássico",
			Description: "Pão, carne, alface, tomate, cebola e molho especial",
			Price:       25.90,
			Category:    "Hambúrgueres",
			Image:       "/images/hamburger-classic.jpg",
			Popular:     true,
			Available:   true,
		},
		{
			Name:        "Hambúrguer Bacon",
			Description: "Pão, carne, bacon crocante, queijo, alface e molho barbecue",
			Price:       29.90,
			Category:    "Hambúrgueres",
			Image:       "/images/hamburger-bacon.jpg",
			Popular:     true,
			Available:   true,
		},
		{
			Name:        "Coca-Cola 350ml",
			Description: "Refrigerante gelado",
			Price:       5.90,
			Category:    "Bebidas",
			Image:       "/images/coca-cola.jpg",
			Available:   true,
		},
		{
			Name:        "Batata Frita",
			Description: "Batatas fritas crocantes com sal",
			Price:       12.90,
			Category:    "Acompanhamentos",
			Image:       "/images/batata-frita.jpg",
			Available:   true,
		},
	}
}

// DefaultResetRestaurant is the profile seeded by the reset flow.
func DefaultResetRestaurant() *models.Restaurant {
	return &models.Restaurant{
		Name:        "GrillManager",
		Description: "O melhor hambúrguer da cidade!",
		Address: &models.Address{
			Street:       "Rua das Flores",
			Number:       "123",
			Neighborhood: "Centro",
		},
		Contact: &models.Contact{
			Phone: "(11) 99999-9999",
			Email: "contato@grillmanager.com",
		},
		IsOpen:         true,
		Logo:           "/images/logo.png",
		PrimaryColor:   "#f97316",
		SecondaryColor: "#ea580c",
	}
}
