package handler

import (
	"errors"
	"net/http"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"
	"grillmanager/internal/service"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	svc            *service.DeliveryService
	restaurantRepo *repository.RestaurantRepository
}

func NewDeliveryHandler(svc *service.DeliveryService, restaurantRepo *repository.RestaurantRepository) *DeliveryHandler {
	return &DeliveryHandler{svc: svc, restaurantRepo: restaurantRepo}
}

type feeRequest struct {
	CustomerAddress *struct {
		Coordinates *models.Coordinates `json:"coordinates"`
	} `json:"customerAddress"`
	OrderValue *float64 `json:"orderValue"`
}

func (h *DeliveryHandler) CalculateFee(c *gin.Context) {
	var req feeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.CustomerAddress == nil || req.CustomerAddress.Coordinates == nil {
		respondError(c, http.StatusBadRequest, "Endereço com coordenadas é obrigatório")
		return
	}
	if req.OrderValue == nil || *req.OrderValue == 0 {
		respondError(c, http.StatusBadRequest, "Valor do pedido é obrigatório")
		return
	}

	rest, err := h.restaurantRepo.First()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if rest == nil {
		respondError(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	quote, err := h.svc.Quote(*req.CustomerAddress.Coordinates, *req.OrderValue, rest.DeliverySettings)
	if err != nil {
		var na *service.NotAvailableError
		if errors.As(err, &na) {
			respondDomainError(c, http.StatusBadRequest, "DELIVERY_NOT_AVAILABLE",
				"Entrega não disponível para este endereço", gin.H{
					"maxDistance":       na.MaxDistance,
					"requestedDistance": na.RequestedDistance,
				})
			return
		}
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondData(c, http.StatusOK, quote)
}
