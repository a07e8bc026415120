package handler

import (
	"net/http"

	"grillmanager/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Orders(c *gin.Context) {
	report, err := h.svc.OrderReport()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, report)
}
