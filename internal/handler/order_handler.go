package handler

import (
	"net/http"
	"strings"
	"time"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"
	"grillmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	repo        *repository.OrderRepository
	paymentRepo *repository.PaymentRepository
}

func NewOrderHandler(repo *repository.OrderRepository, paymentRepo *repository.PaymentRepository) *OrderHandler {
	return &OrderHandler{repo: repo, paymentRepo: paymentRepo}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondData(c, http.StatusOK, orders)
}

type orderRequest struct {
	Customer        *models.Customer        `json:"customer"`
	DeliveryAddress *models.Address         `json:"deliveryAddress"`
	Items           []models.OrderItem      `json:"items"`
	Payment         *models.PaymentSummary  `json:"payment"`
	Delivery        *models.DeliverySummary `json:"delivery"`
	Totals          *models.Totals          `json:"totals"`
	Notes           string                  `json:"notes"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Customer == nil || req.Customer.Name == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: customer.name")
		return
	}
	if req.DeliveryAddress == nil || req.DeliveryAddress.Coordinates == nil {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: deliveryAddress.coordinates")
		return
	}
	if len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: items (array não vazio)")
		return
	}
	if req.Totals == nil || req.Totals.Total == 0 {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: totals.total")
		return
	}
	for _, item := range req.Items {
		if item.ProductID == 0 || item.Name == "" || item.Quantity == 0 || item.UnitPrice == 0 {
			respondError(c, http.StatusBadRequest, "Cada item deve ter: productId, name, quantity, unitPrice")
			return
		}
	}

	payment := req.Payment
	if payment == nil {
		payment = &models.PaymentSummary{Method: domain.PaymentMethodPix}
	}
	delivery := req.Delivery
	if delivery == nil {
		delivery = &models.DeliverySummary{}
	}

	order := &models.Order{
		OrderID:         repository.GenerateOrderID(),
		Items:           req.Items,
		Customer:        req.Customer,
		DeliveryAddress: req.DeliveryAddress,
		Payment:         payment,
		Delivery:        delivery,
		Totals:          req.Totals,
		Notes:           req.Notes,
		Status:          domain.OrderStatusPending,
		Timeline: []models.TimelineEntry{{
			Status:    domain.OrderStatusPending,
			Timestamp: time.Now(),
			Message:   domain.StatusMessage(domain.OrderStatusPending),
		}},
	}

	if err := h.repo.Create(order); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	estimatedDelivery := delivery.EstimatedTime
	if estimatedDelivery == "" {
		estimatedDelivery = "35-45 min"
	}
	respondDataMsg(c, http.StatusCreated, gin.H{
		"orderId":               order.OrderID,
		"status":                order.Status,
		"estimatedPrepTime":     "25-30 min",
		"estimatedDeliveryTime": estimatedDelivery,
		"payment": gin.H{
			"method":    payment.Method,
			"pixCode":   nil, // generated separately via /payments/pix/generate
			"qrCode":    nil,
			"expiresAt": nil,
		},
		"tracking": gin.H{
			"status":        order.Status,
			"statusHistory": order.Timeline,
		},
	}, "Pedido criado com sucesso")
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("orderId")
	if orderID == "" {
		respondError(c, http.StatusBadRequest, "ID do pedido é obrigatório")
		return
	}

	order, err := h.repo.GetByOrderID(orderID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Pedido não encontrado")
		return
	}

	paymentStatus := strings.ToLower(domain.PaymentStatusPending)
	var paidAt *time.Time
	if payment, err := h.paymentRepo.FirstByOrderID(orderID); err == nil && payment != nil {
		paymentStatus = strings.ToLower(payment.Status)
		paidAt = payment.PaidAt
	}
	method := domain.PaymentMethodPix
	if order.Payment != nil && order.Payment.Method != "" {
		method = order.Payment.Method
	}

	respondData(c, http.StatusOK, gin.H{
		"orderId":         order.OrderID,
		"status":          strings.ToLower(order.Status),
		"customer":        order.Customer,
		"deliveryAddress": order.DeliveryAddress,
		"items":           order.Items,
		"payment": gin.H{
			"method": method,
			"status": paymentStatus,
			"paidAt": paidAt,
		},
		"delivery": gin.H{
			"fee":           deliveryFee(order),
			"distance":      deliveryDistance(order),
			"deliveryZone":  deliveryZone(order),
			"estimatedTime": deliveryEstimatedTime(order),
			// Stand-in until courier assignment exists.
			"deliveryPerson": gin.H{
				"name":  "Maria Santos",
				"phone": "(11) 88888-8888",
			},
		},
		"timeline":              order.Timeline,
		"estimatedDeliveryTime": estimatedDeliveryAt(order),
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus overwrites the order's status (no transition table) and
// appends exactly one timeline entry.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	if orderID == "" {
		respondError(c, http.StatusBadRequest, "ID do pedido é obrigatório")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, http.StatusBadRequest, "Campo obrigatório: status")
		return
	}
	if !domain.IsValidOrderStatus(req.Status) {
		respondError(c, http.StatusBadRequest,
			"Status inválido. Valores aceitos: "+strings.Join(domain.ValidOrderStatuses, ", "))
		return
	}

	order, err := h.repo.GetByOrderID(orderID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Pedido não encontrado")
		return
	}

	order.Status = req.Status
	order.Timeline = append(order.Timeline, models.TimelineEntry{
		Status:    req.Status,
		Timestamp: time.Now(),
		Message:   domain.StatusMessage(req.Status),
	})

	if err := h.repo.Update(order); err != nil {
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	respondDataMsg(c, http.StatusOK, order, "Status do pedido atualizado com sucesso")
}

func deliveryFee(o *models.Order) float64 {
	if o.Delivery == nil {
		return 0
	}
	return o.Delivery.Fee
}

func deliveryDistance(o *models.Order) float64 {
	if o.Delivery == nil {
		return 0
	}
	return o.Delivery.Distance
}

func deliveryZone(o *models.Order) string {
	if o.Delivery == nil {
		return ""
	}
	return o.Delivery.DeliveryZone
}

func deliveryEstimatedTime(o *models.Order) string {
	if o.Delivery == nil {
		return ""
	}
	return o.Delivery.EstimatedTime
}

// estimatedDeliveryAt projects an arrival timestamp from creation time:
// fixed prep plus a travel time linear in distance.
func estimatedDeliveryAt(o *models.Order) time.Time {
	const prepMinutes = 25
	deliveryMinutes := int(deliveryDistance(o)*2 + 15 + 0.5)
	return o.CreatedAt.Add(time.Duration(prepMinutes+deliveryMinutes) * time.Minute)
}
