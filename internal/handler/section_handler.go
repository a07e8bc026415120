package handler

import (
	"fmt"
	"net/http"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	repo        *repository.SectionRepository
	productRepo *repository.ProductRepository
}

func NewSectionHandler(repo *repository.SectionRepository, productRepo *repository.ProductRepository) *SectionHandler {
	return &SectionHandler{repo: repo, productRepo: productRepo}
}

func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.repo.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	out := make([]gin.H, len(sections))
	for i, s := range sections {
		out[i] = gin.H{
			"id":           s.ID,
			"title":        s.Title,
			"description":  s.Description,
			"displayOrder": s.DisplayOrder,
			"active":       s.Active,
			"products":     h.expandProducts(s.Products),
			"createdAt":    s.CreatedAt,
			"updatedAt":    s.UpdatedAt,
		}
	}
	respondData(c, http.StatusOK, out)
}

type sectionRequest struct {
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	DisplayOrder *int                `json:"displayOrder"`
	Active       *bool               `json:"active"`
	Products     []models.ProductRef `json:"products"`
}

func (h *SectionHandler) Create(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Title == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: title")
		return
	}
	if len(req.Products) == 0 {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: products (array não vazio)")
		return
	}
	if msg := h.validateRefs(req.Products); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	section := &models.PromotionalSection{
		Title:    req.Title,
		Active:   true,
		Products: req.Products,
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		section.DisplayOrder = *req.DisplayOrder
	}
	if req.Active != nil {
		section.Active = *req.Active
	}

	if err := h.repo.Create(section); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusCreated, section, "Seção promocional criada com sucesso")
}

func (h *SectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da seção promocional é obrigatório")
		return
	}
	section, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Seção promocional não encontrada")
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"id":           section.ID,
		"title":        section.Title,
		"description":  section.Description,
		"displayOrder": section.DisplayOrder,
		"active":       section.Active,
		"products":     h.expandProducts(section.Products),
		"createdAt":    section.CreatedAt,
		"updatedAt":    section.UpdatedAt,
	})
}

func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da seção promocional é obrigatório")
		return
	}
	section, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Seção promocional não encontrada")
		return
	}

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Products != nil {
		if len(req.Products) == 0 {
			respondError(c, http.StatusBadRequest, "Products deve ser um array não vazio")
			return
		}
		if msg := h.validateRefs(req.Products); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}
		section.Products = req.Products
	}
	if req.Title != "" {
		section.Title = req.Title
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		section.DisplayOrder = *req.DisplayOrder
	}
	if req.Active != nil {
		section.Active = *req.Active
	}

	if err := h.repo.Update(section); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusOK, section, "Seção promocional atualizada com sucesso")
}

func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da seção promocional é obrigatório")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondError(c, http.StatusNotFound, "Seção promocional não encontrada")
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondMsg(c, http.StatusOK, "Seção promocional removida com sucesso")
}

// validateRefs checks each reference points at an existing product; returns
// a user-facing message on the first failure.
func (h *SectionHandler) validateRefs(refs []models.ProductRef) string {
	for _, ref := range refs {
		if ref.ProductID == 0 {
			return "Cada produto deve ter: productId, displayOrder"
		}
		if _, err := h.productRepo.GetByID(ref.ProductID); err != nil {
			return fmt.Sprintf("Produto não encontrado: %d", ref.ProductID)
		}
	}
	return ""
}

func (h *SectionHandler) expandProducts(refs []models.ProductRef) []gin.H {
	out := make([]gin.H, len(refs))
	for i, ref := range refs {
		var product *models.Product
		if p, err := h.productRepo.GetByID(ref.ProductID); err == nil {
			product = p
		}
		out[i] = gin.H{
			"productId":    ref.ProductID,
			"displayOrder": ref.DisplayOrder,
			"product":      product,
		}
	}
	return out
}
