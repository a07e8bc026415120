package handler

import (
	"net/http"

	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	repo *repository.BackupRepository
}

func NewBackupHandler(repo *repository.BackupRepository) *BackupHandler {
	return &BackupHandler{repo: repo}
}

func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.repo.Export()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, data)
}

func (h *BackupHandler) Import(c *gin.Context) {
	var data repository.BackupData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if data.Products == nil || data.Categories == nil || data.RestaurantInfo == nil || data.Orders == nil {
		respondError(c, http.StatusBadRequest,
			"Dados de backup inválidos. Campos obrigatórios: products, categories, restaurantInfo, orders")
		return
	}

	if err := h.repo.Import(&data); err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao importar dados")
		return
	}
	respondMsg(c, http.StatusOK, "Dados importados com sucesso")
}

func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.repo.Reset(); err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao resetar dados")
		return
	}
	respondMsg(c, http.StatusOK, "Dados resetados para valores padrão com sucesso")
}
