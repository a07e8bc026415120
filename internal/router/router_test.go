package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"grillmanager/config"
	"grillmanager/internal/database"
	"grillmanager/internal/domain"
	"grillmanager/internal/models"
	"grillmanager/internal/repository"
	"grillmanager/pkg/geocode"
	"grillmanager/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	originLat = -23.5505
	originLng = -46.6333
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Payment: config.PaymentConfig{PixExpiry: 30 * time.Minute, MerchantName: "BOTECO MAMINHA", MerchantCity: "SAO PAULO"},
		Delivery: config.DeliveryConfig{
			OriginLatitude:  originLat,
			OriginLongitude: originLng,
		},
	}
}

func setupTest(t *testing.T, provider payment.Provider) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	geocoder := geocode.NewMockGeocoder(originLat, originLng)
	return Setup(testConfig(), db, provider, geocoder), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// destAtKm places a point due north of the origin so the great-circle
// distance is exactly km.
func destAtKm(km float64) models.Coordinates {
	return models.Coordinates{
		Latitude:  originLat + (km/6371.0)*(180/math.Pi),
		Longitude: originLng,
	}
}

func seedRestaurant(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(repository.DefaultRestaurant()).Error)
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Rota não encontrada", env.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodDelete, "/api/health", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Método não permitido", env.Message)
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{"name": "João Silva", "phone": "(11) 98888-7777"},
		"deliveryAddress": map[string]interface{}{
			"street": "Rua Augusta", "number": "456",
			"coordinates": map[string]float64{"latitude": -23.56, "longitude": -46.65},
		},
		"items": []map[string]interface{}{
			{"productId": 1, "name": "Hambúrguer Clássico", "quantity": 2, "unitPrice": 25.90, "totalPrice": 51.80},
		},
		"totals": map[string]float64{"subtotal": 51.80, "deliveryFee": 8, "total": 59.80},
	}
}

func createOrder(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var data struct {
		OrderID string `json:"orderId"`
	}
	env := decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.OrderID)
	return data.OrderID
}

func TestCreateOrderValidation(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	body := validOrderBody()
	delete(body, "customer")
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Campo obrigatório: customer.name", decode(t, w).Message)

	body = validOrderBody()
	body["items"] = []map[string]interface{}{}
	w = doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = validOrderBody()
	body["items"] = []map[string]interface{}{{"productId": 1, "name": "X", "quantity": 0, "unitPrice": 5}}
	w = doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cada item deve ter: productId, name, quantity, unitPrice", decode(t, w).Message)
}

func TestOrderStatusFlow(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	orderID := createOrder(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/"+orderID+"/status", map[string]string{"status": "FLYING"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "Status inválido")

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+orderID+"/status", map[string]string{"status": domain.OrderStatusPreparing})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Order
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, domain.OrderStatusPreparing, updated.Status)
	require.Len(t, updated.Timeline, 2)
	assert.Equal(t, domain.OrderStatusPreparing, updated.Timeline[1].Status)

	w = doJSON(t, r, http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Status  string `json:"status"`
		Payment struct {
			Status string `json:"status"`
		} `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, "preparing", got.Status)
	assert.Equal(t, "pending", got.Payment.Status)
}

func TestOrderStatusMissingOrder(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodPatch, "/api/orders/ORD-19990101-000/status", map[string]string{"status": domain.OrderStatusConfirmed})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pedido não encontrado", decode(t, w).Message)
}

func TestCategoryDuplicateName(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	w := doJSON(t, r, http.MethodPost, "/api/categories", map[string]string{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]string{"name": "Bebidas"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Já existe uma categoria com esse nome", decode(t, w).Message)
}

func TestCategoryDeleteBlockedByProducts(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	category := models.Category{Name: "Hambúrgueres"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Clássico", Price: 25.90, Category: "Hambúrgueres", Available: true}).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Não é possível excluir categoria que possui produtos associados", decode(t, w).Message)
}

func TestCalculateFee(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	seedRestaurant(t, db)

	dest := destAtKm(3)
	w := doJSON(t, r, http.MethodPost, "/api/delivery/calculate-fee", map[string]interface{}{
		"customerAddress": map[string]interface{}{
			"coordinates": map[string]float64{"latitude": dest.Latitude, "longitude": dest.Longitude},
		},
		"orderValue": 30.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Distance      float64 `json:"distance"`
		CalculatedFee float64 `json:"calculatedFee"`
		FreeDelivery  bool    `json:"freeDelivery"`
		DeliveryZone  string  `json:"deliveryZone"`
		IsDeliverable bool    `json:"isDeliverable"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &quote))
	assert.InDelta(t, 3.0, quote.Distance, 0.05)
	assert.InDelta(t, 11.0, quote.CalculatedFee, 0.1)
	assert.False(t, quote.FreeDelivery)
	assert.Equal(t, "zone_002", quote.DeliveryZone)
	assert.True(t, quote.IsDeliverable)
}

func TestCalculateFeeNotAvailable(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	seedRestaurant(t, db)

	dest := destAtKm(20)
	w := doJSON(t, r, http.MethodPost, "/api/delivery/calculate-fee", map[string]interface{}{
		"customerAddress": map[string]interface{}{
			"coordinates": map[string]float64{"latitude": dest.Latitude, "longitude": dest.Longitude},
		},
		"orderValue": 30.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DELIVERY_NOT_AVAILABLE", env.Error.Code)
}

func TestPixGenerateAndVerifyPaid(t *testing.T) {
	provider := payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO")
	provider.PaidProbability = 1
	r, db := setupTest(t, provider)
	orderID := createOrder(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix/generate", map[string]interface{}{
		"orderId":     orderID,
		"amount":      59.80,
		"description": "Pedido " + orderID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var generated struct {
		PixCode       string `json:"pixCode"`
		TransactionID string `json:"transactionId"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &generated))
	require.NotEmpty(t, generated.TransactionID)
	assert.Contains(t, generated.PixCode, "br.gov.bcb.pix")

	w = doJSON(t, r, http.MethodPost, "/api/payments/pix/verify", map[string]string{
		"orderId":       orderID,
		"transactionId": generated.TransactionID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var verified struct {
		Paid bool `json:"paid"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &verified))
	assert.True(t, verified.Paid)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", orderID).First(&order).Error)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
}

func TestPixVerifyNotPaidKeepsPending(t *testing.T) {
	provider := payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO")
	provider.PaidProbability = 0
	r, db := setupTest(t, provider)
	orderID := createOrder(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix/generate", map[string]interface{}{
		"orderId":     orderID,
		"amount":      59.80,
		"description": "Pedido " + orderID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var generated struct {
		TransactionID string `json:"transactionId"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &generated))

	w = doJSON(t, r, http.MethodPost, "/api/payments/pix/verify", map[string]string{
		"orderId":       orderID,
		"transactionId": generated.TransactionID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var verified struct {
		Paid bool `json:"paid"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &verified))
	assert.False(t, verified.Paid)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", orderID).First(&order).Error)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestPixVerifyExpired(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	orderID := createOrder(t, r)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Create(&models.Payment{
		OrderID:       orderID,
		Method:        domain.PaymentMethodPix,
		Amount:        59.80,
		TransactionID: "txn_expired",
		Status:        domain.PaymentStatusPending,
		ExpiresAt:     &expired,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix/verify", map[string]string{
		"orderId":       orderID,
		"transactionId": "txn_expired",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Pagamento expirado", decode(t, w).Message)

	var record models.Payment
	require.NoError(t, db.Where("transaction_id = ?", "txn_expired").First(&record).Error)
	assert.Equal(t, domain.PaymentStatusExpired, record.Status)
}

func TestCalculateFeeZeroOrderValue(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	seedRestaurant(t, db)

	dest := destAtKm(3)
	w := doJSON(t, r, http.MethodPost, "/api/delivery/calculate-fee", map[string]interface{}{
		"customerAddress": map[string]interface{}{
			"coordinates": map[string]float64{"latitude": dest.Latitude, "longitude": dest.Longitude},
		},
		"orderValue": 0.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Valor do pedido é obrigatório", decode(t, w).Message)
}

func TestPixGenerateZeroAmount(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodPost, "/api/payments/pix/generate", map[string]interface{}{
		"orderId":     "ORD-20260830-123",
		"amount":      0.0,
		"description": "Pedido ORD-20260830-123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Campos obrigatórios: orderId, amount, description", decode(t, w).Message)
}

func TestRestaurantGetSeedsDefaultProfile(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	require.Zero(t, count)

	w := doJSON(t, r, http.MethodGet, "/api/restaurant", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Name             string `json:"name"`
		DeliverySettings struct {
			MaxDistance float64 `json:"maxDistance"`
		} `json:"deliverySettings"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, "Boteco da Maminha", got.Name)
	assert.Equal(t, 15.0, got.DeliverySettings.MaxDistance)

	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Second read reuses the seeded row.
	w = doJSON(t, r, http.MethodGet, "/api/restaurant", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsCreateRejectsExistingKey(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	w := doJSON(t, r, http.MethodPost, "/api/settings", map[string]interface{}{
		"key":   "tema",
		"value": map[string]string{"primaryColor": "#000000"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/settings", map[string]interface{}{
		"key":   "tema",
		"value": map[string]string{"primaryColor": "#ffffff"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Configuração já existe. Use PUT para atualizar.", decode(t, w).Message)
}

func TestSettingsUpdateMissingKey(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodPut, "/api/settings", map[string]interface{}{
		"key":   "inexistente",
		"value": true,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Configuração não encontrada", decode(t, w).Message)
}

func TestSettingsGetMergesOverDefaults(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	w := doJSON(t, r, http.MethodPost, "/api/settings", map[string]interface{}{
		"key":   "delivery",
		"value": map[string]bool{"enabled": false},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &merged))

	var delivery struct {
		Enabled bool `json:"enabled"`
	}
	require.NoError(t, json.Unmarshal(merged["delivery"], &delivery))
	assert.False(t, delivery.Enabled)
	assert.Contains(t, merged, "payment")
	assert.Contains(t, merged, "notifications")
}

func TestSectionCreateUnknownProduct(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))

	product := models.Product{Name: "Hambúrguer Clássico", Price: 25.90, Category: "Hambúrgueres", Available: true}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, http.MethodPost, "/api/promotional-sections", map[string]interface{}{
		"title": "Destaques",
		"products": []map[string]interface{}{
			{"productId": product.ID, "displayOrder": 1},
			{"productId": 9999, "displayOrder": 2},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Produto não encontrado: 9999", decode(t, w).Message)

	w = doJSON(t, r, http.MethodPost, "/api/promotional-sections", map[string]interface{}{
		"title": "Destaques",
		"products": []map[string]interface{}{
			{"productId": product.ID, "displayOrder": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGeocodingEndpoint(t *testing.T) {
	r, _ := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	w := doJSON(t, r, http.MethodPost, "/api/geocoding/address-to-coordinates", map[string]string{
		"address": "Rua Augusta, 456, São Paulo - SP",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Coordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.NotZero(t, result.Coordinates.Latitude)
}

func TestResetEndpoint(t *testing.T) {
	r, db := setupTest(t, payment.NewMockProvider("BOTECO MAMINHA", "SAO PAULO"))
	createOrder(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	assert.Empty(t, orders)

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	assert.Len(t, products, 4)
}
