package repository

import (
	"errors"

	"grillmanager/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// First returns the singleton profile row, or nil when none exists yet.
func (r *RestaurantRepository) First() (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.First(&rest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *models.Restaurant) error {
	return r.db.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *models.Restaurant) error {
	return r.db.Save(rest).Error
}

// GetOrCreate returns the profile, creating it with the default data on
// first read.
func (r *RestaurantRepository) GetOrCreate() (*models.Restaurant, error) {
	rest, err := r.First()
	if err != nil {
		return nil, err
	}
	if rest != nil {
		return rest, nil
	}
	rest = DefaultRestaurant()
	if err := r.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// DefaultRestaurant is the profile seeded lazily on first read.
func DefaultRestaurant() *models.Restaurant {
	return &models.Restaurant{
		Name:        "Boteco da Maminha",
		Description: "Comida caseira e deliciosa",
		Address: &models.Address{
			Street:       "Rua do Comércio",
			Number:       "123",
			Neighborhood: "Centro",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01000-000",
			Coordinates:  &models.Coordinates{Latitude: -23.5505, Longitude: -46.6333},
		},
		Contact: &models.Contact{
			Phone:    "(11) 99999-9999",
			WhatsApp: "(11) 99999-9999",
			Email:    "contato@botecodamaminha.com",
		},
		DeliverySettings: models.DefaultDeliverySettings(),
		OperatingHours: &models.OperatingHours{
			Monday:    models.DayHours{Open: "11:00", Close: "22:00"},
			Tuesday:   models.DayHours{Open: "11:00", Close: "22:00"},
			Wednesday: models.DayHours{Open: "11:00", Close: "22:00"},
			Thursday:  models.DayHours{Open: "11:00", Close: "22:00"},
			Friday:    models.DayHours{Open: "11:00", Close: "22:00"},
			Saturday:  models.DayHours{Open: "11:00", Close: "23:00"},
			Sunday:    models.DayHours{Open: "12:00", Close: "21:00"},
		},
		IsOpen:            true,
		EstimatedPrepTime: "25-35 min",
		Logo:              "/images/logo.png",
		PrimaryColor:      "#f97316",
		SecondaryColor:    "#ea580c",
	}
}
