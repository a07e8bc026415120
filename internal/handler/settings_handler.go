package handler

import (
	"encoding/json"
	"net/http"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingRepository
}

func NewSettingsHandler(repo *repository.SettingRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// defaultSettings are the hardcoded values stored rows are merged over.
func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"delivery": map[string]interface{}{
			"enabled":              true,
			"baseFee":              5.00,
			"perKmFee":             2.00,
			"maxDistance":          15.0,
			"freeDeliveryMinOrder": 50.00,
			"estimatedPrepTime":    "25-35 min",
		},
		"payment": map[string]interface{}{
			"methods": []string{"pix", "dinheiro", "credito", "debito"},
			"pix": map[string]interface{}{
				"enabled": true,
				"key":     "boteco.maminha@pix.com",
			},
		},
		"notifications": map[string]interface{}{
			"whatsapp": map[string]interface{}{
				"enabled": true,
				"number":  "(11) 99999-9999",
			},
			"email": map[string]interface{}{
				"enabled": true,
				"address": "contato@botecodamaminha.com",
			},
		},
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.repo.GetAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	merged := defaultSettings()
	for _, s := range settings {
		var value interface{}
		if err := json.Unmarshal([]byte(s.Value), &value); err != nil {
			value = s.Value
		}
		merged[s.Key] = value
	}

	respondData(c, http.StatusOK, merged)
}

type settingRequest struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

func (h *SettingsHandler) Create(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" || req.Value == nil {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: key, value")
		return
	}

	existing, err := h.repo.GetByKey(req.Key)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Configuração já existe. Use PUT para atualizar.")
		return
	}

	raw, err := json.Marshal(req.Value)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: key, value")
		return
	}
	setting := &models.Setting{Key: req.Key, Value: string(raw)}
	if err := h.repo.Create(setting); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusCreated, setting, "Configuração criada com sucesso")
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" || req.Value == nil {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: key, value")
		return
	}

	setting, err := h.repo.GetByKey(req.Key)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if setting == nil {
		respondError(c, http.StatusNotFound, "Configuração não encontrada")
		return
	}

	raw, err := json.Marshal(req.Value)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: key, value")
		return
	}
	setting.Value = string(raw)
	if err := h.repo.Update(setting); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusOK, setting, "Configuração atualizada com sucesso")
}
