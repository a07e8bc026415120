package handler

import (
	"net/http"
	"time"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"
	"grillmanager/internal/repository"
	"grillmanager/pkg/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	repo      *repository.PaymentRepository
	orderRepo *repository.OrderRepository
	provider  payment.Provider
	pixExpiry time.Duration
}

func NewPaymentHandler(repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, provider payment.Provider, pixExpiry time.Duration) *PaymentHandler {
	return &PaymentHandler{repo: repo, orderRepo: orderRepo, provider: provider, pixExpiry: pixExpiry}
}

type generateRequest struct {
	OrderID     string   `json:"orderId"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

func (h *PaymentHandler) GeneratePix(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.OrderID == "" || req.Amount == nil || *req.Amount == 0 || req.Description == "" {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: orderId, amount, description")
		return
	}

	order, err := h.orderRepo.GetByOrderID(req.OrderID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Pedido não encontrado")
		return
	}

	charge, err := h.provider.GenerateCharge(c.Request.Context(), payment.ChargeRequest{
		OrderID:     req.OrderID,
		Amount:      *req.Amount,
		Description: req.Description,
		ExpiresIn:   h.pixExpiry,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	record := &models.Payment{
		OrderID:       req.OrderID,
		Method:        domain.PaymentMethodPix,
		Amount:        *req.Amount,
		PixCode:       charge.PixCode,
		QRCode:        charge.QRCode,
		TransactionID: charge.TransactionID,
		Status:        domain.PaymentStatusPending,
		ExpiresAt:     &charge.ExpiresAt,
	}
	if err := h.repo.Create(record); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"pixCode":       charge.PixCode,
		"qrCode":        charge.QRCode,
		"transactionId": charge.TransactionID,
		"expiresAt":     charge.ExpiresAt,
		"amount":        *req.Amount,
	})
}

type verifyRequest struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// VerifyPix settles or rejects a pending charge. Ordering matters: already
// paid wins, then expiry, then the provider check.
func (h *PaymentHandler) VerifyPix(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.OrderID == "" || req.TransactionID == "" {
		respondError(c, http.StatusBadRequest, "Campos obrigatórios: orderId, transactionId")
		return
	}

	record, err := h.repo.GetByOrderAndTransaction(req.OrderID, req.TransactionID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if record == nil {
		respondError(c, http.StatusNotFound, "Pagamento não encontrado")
		return
	}

	if record.Status == domain.PaymentStatusPaid {
		respondData(c, http.StatusOK, gin.H{
			"paid":          true,
			"paidAt":        record.PaidAt,
			"transactionId": record.TransactionID,
			"amount":        record.Amount,
		})
		return
	}

	if record.ExpiresAt != nil && record.ExpiresAt.Before(time.Now()) {
		record.Status = domain.PaymentStatusExpired
		if err := h.repo.Update(record); err != nil {
			respondError(c, http.StatusInternalServerError, msgInternalError)
			return
		}
		respondError(c, http.StatusBadRequest, "Pagamento expirado")
		return
	}

	paid, err := h.provider.VerifyPayment(c.Request.Context(), req.TransactionID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	if !paid {
		respondData(c, http.StatusOK, gin.H{
			"paid":          false,
			"paidAt":        nil,
			"transactionId": record.TransactionID,
			"amount":        record.Amount,
		})
		return
	}

	now := time.Now()
	record.Status = domain.PaymentStatusPaid
	record.PaidAt = &now
	if err := h.repo.Update(record); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	// Settlement cascades the order to CONFIRMED.
	if order, err := h.orderRepo.GetByOrderID(req.OrderID); err == nil && order != nil {
		order.Status = domain.OrderStatusConfirmed
		_ = h.orderRepo.Update(order)
	}

	respondData(c, http.StatusOK, gin.H{
		"paid":          true,
		"paidAt":        now,
		"transactionId": record.TransactionID,
		"amount":        record.Amount,
	})
}
