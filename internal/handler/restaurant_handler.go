package handler

import (
	"net/http"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantHandler(repo *repository.RestaurantRepository) *RestaurantHandler {
	return &RestaurantHandler{repo: repo}
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	rest, err := h.repo.GetOrCreate()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"id":                rest.ID,
		"name":              rest.Name,
		"description":       rest.Description,
		"address":           rest.Address,
		"contact":           rest.Contact,
		"deliverySettings":  rest.DeliverySettings,
		"operatingHours":    rest.OperatingHours,
		"isOpen":            rest.IsOpen,
		"estimatedPrepTime": rest.EstimatedPrepTime,
		"logo":              rest.Logo,
		"theme": gin.H{
			"primaryColor":   rest.PrimaryColor,
			"secondaryColor": rest.SecondaryColor,
		},
		"updatedAt": rest.UpdatedAt,
	})
}

type restaurantRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Address     *models.Address `json:"address"`
	Phone       *string         `json:"phone"`
	Email       *string         `json:"email"`
	Logo        *string         `json:"logo"`
	Theme       *struct {
		PrimaryColor   string `json:"primaryColor"`
		SecondaryColor string `json:"secondaryColor"`
	} `json:"theme"`
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: name")
		return
	}

	rest, err := h.repo.First()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if rest == nil {
		rest = &models.Restaurant{
			PrimaryColor:   "#f97316",
			SecondaryColor: "#ea580c",
			IsOpen:         true,
		}
	}

	rest.Name = req.Name
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.Address != nil {
		rest.Address = req.Address
	}
	if req.Phone != nil || req.Email != nil {
		contact := rest.Contact
		if contact == nil {
			contact = &models.Contact{}
		}
		if req.Phone != nil {
			contact.Phone = *req.Phone
		}
		if req.Email != nil {
			contact.Email = *req.Email
		}
		if contact.WhatsApp == "" {
			contact.WhatsApp = contact.Phone
		}
		rest.Contact = contact
	}
	if req.Logo != nil {
		rest.Logo = *req.Logo
	}
	if req.Theme != nil {
		if req.Theme.PrimaryColor != "" {
			rest.PrimaryColor = req.Theme.PrimaryColor
		}
		if req.Theme.SecondaryColor != "" {
			rest.SecondaryColor = req.Theme.SecondaryColor
		}
	}

	if rest.ID == 0 {
		err = h.repo.Create(rest)
	} else {
		err = h.repo.Update(rest)
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondDataMsg(c, http.StatusOK, gin.H{
		"name":        rest.Name,
		"description": rest.Description,
		"address":     rest.Address,
		"contact":     rest.Contact,
		"logo":        rest.Logo,
		"theme": gin.H{
			"primaryColor":   rest.PrimaryColor,
			"secondaryColor": rest.SecondaryColor,
		},
		"updatedAt": rest.UpdatedAt,
	}, "Informações do restaurante atualizadas com sucesso")
}
