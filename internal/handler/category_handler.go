package handler

import (
	"net/http"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	repo        *repository.CategoryRepository
	productRepo *repository.ProductRepository
}

func NewCategoryHandler(repo *repository.CategoryRepository, productRepo *repository.ProductRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo, productRepo: productRepo}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, categories)
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: name")
		return
	}

	// Existence check, not a constraint: concurrent creates can race.
	existing, err := h.repo.GetByName(req.Name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Já existe uma categoria com esse nome")
		return
	}

	category := &models.Category{Name: req.Name}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if err := h.repo.Create(category); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusCreated, category, "Categoria criada com sucesso")
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da categoria é obrigatório")
		return
	}
	category, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da categoria é obrigatório")
		return
	}
	category, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name != "" && req.Name != category.Name {
		duplicate, err := h.repo.GetByName(req.Name)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgInternalError)
			return
		}
		if duplicate != nil {
			respondError(c, http.StatusBadRequest, "Já existe uma categoria com esse nome")
			return
		}
		category.Name = req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := h.repo.Update(category); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusOK, category, "Categoria atualizada com sucesso")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID da categoria é obrigatório")
		return
	}
	category, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}

	referenced, err := h.productRepo.ExistsInCategory(category.Name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if referenced {
		respondError(c, http.StatusBadRequest, "Não é possível excluir categoria que possui produtos associados")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondMsg(c, http.StatusOK, "Categoria removida com sucesso")
}
