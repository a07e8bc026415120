package handler

import (
	"net/http"
	"strconv"

	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	repo *repository.ProductRepository
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, products)
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       *string  `json:"image"`
	Popular     *bool    `json:"popular"`
	Available   *bool    `json:"available"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name == "" || req.Description == "" || req.Price == nil || req.Category == "" {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: name, description, price, category")
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Available:   true,
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Popular != nil {
		product.Popular = *req.Popular
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	if err := h.repo.Create(product); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusCreated, product, "Produto criado com sucesso")
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID do produto é obrigatório")
		return
	}
	product, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID do produto é obrigatório")
		return
	}
	product, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Popular != nil {
		product.Popular = *req.Popular
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	if err := h.repo.Update(product); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusOK, product, "Produto atualizado com sucesso")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "ID do produto é obrigatório")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondError(c, http.StatusNotFound, "Produto não encontrado")
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondMsg(c, http.StatusOK, "Produto removido com sucesso")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
