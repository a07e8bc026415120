package handler

import (
	"errors"
	"net/http"

	"grillmanager/pkg/geocode"

	"github.com/gin-gonic/gin"
)

type GeocodingHandler struct {
	geocoder geocode.Geocoder
}

func NewGeocodingHandler(geocoder geocode.Geocoder) *GeocodingHandler {
	return &GeocodingHandler{geocoder: geocoder}
}

type geocodeRequest struct {
	Address string `json:"address"`
}

func (h *GeocodingHandler) AddressToCoordinates(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: address (string)")
		return
	}

	result, err := h.geocoder.Geocode(req.Address)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			respondDomainError(c, http.StatusBadRequest, "INVALID_ADDRESS",
				"Endereço não encontrado ou inválido", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondData(c, http.StatusOK, result)
}
