package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marcheapp/storefront/internal/account"
	"github.com/marcheapp/storefront/internal/catalog"
	"github.com/marcheapp/storefront/internal/service/cart"
	"github.com/marcheapp/storefront/internal/service/checkout"
	"github.com/marcheapp/storefront/internal/service/httpapi"
	"github.com/marcheapp/storefront/internal/service/orders"
	"github.com/marcheapp/storefront/internal/storage/memory"
)

// StorefrontFlowTestSuite тестирует полный путь покупателя через REST API:
// каталог -> корзина -> оформление -> статусы заказа.
type StorefrontFlowTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func (suite *StorefrontFlowTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	catalogSrc := catalog.NewSeeded()
	accounts := account.NewSeeded()
	carts := memory.NewCartStore()
	orderRepo := memory.NewOrderRepository()
	timelineRepo := memory.NewTimelineRepository()
	idempotencyRepo := memory.NewIdempotencyRepository()

	cartSvc := cart.NewServiceWithoutMetrics(carts, catalogSrc, logger)
	checkoutSvc := checkout.NewServiceWithoutMetrics(carts, orderRepo, timelineRepo, accounts, nil, logger)
	ordersSvc := orders.NewServiceWithoutMetrics(orderRepo, timelineRepo, nil, logger)

	apiServer := httpapi.NewServer(catalogSrc, accounts, cartSvc, checkoutSvc, ordersSvc, idempotencyRepo, logger)

	suite.server = httptest.NewServer(apiServer.Router())
	suite.client = suite.server.Client()
}

func (suite *StorefrontFlowTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *StorefrontFlowTestSuite) TestFullPurchaseFlow() {
	// 1. Покупатель просматривает каталог
	var products []map[string]any
	suite.getJSON("/api/v1/catalog/products", &products)
	require.NotEmpty(suite.T(), products)

	// 2. Добавляет два товара в корзину
	suite.postJSON("/api/v1/cart/items", map[string]any{"product_id": "1", "quantity": 2}, http.StatusCreated, nil)
	suite.postJSON("/api/v1/cart/items", map[string]any{"product_id": "2", "quantity": 1}, http.StatusCreated, nil)

	var cartBody map[string]any
	suite.getJSON("/api/v1/cart", &cartBody)
	require.Equal(suite.T(), "16.40", cartBody["subtotal"])          // 2*4.95 + 6.50
	require.Equal(suite.T(), "18.90", cartBody["total_delivery"])    // + доставка 2.50
	require.Equal(suite.T(), "16.40", cartBody["total_pickup"])      // самовывоз без наценки
	require.Len(suite.T(), cartBody["lines"].([]any), 2)

	// 3. Оформляет заказ с доставкой
	var order map[string]any
	suite.postJSON("/api/v1/checkout", map[string]any{
		"method":            "delivery",
		"address_id":        "1",
		"payment_method_id": "1",
		"note":              "Sonnez deux fois",
	}, http.StatusCreated, &order)

	require.Equal(suite.T(), "pending", order["status"])
	require.Equal(suite.T(), "18.90", order["total"])
	orderID := order["id"].(string)
	require.NotEmpty(suite.T(), orderID)

	progress := order["progress"].(map[string]any)
	require.Equal(suite.T(), "En attente", progress["label"])
	require.Equal(suite.T(), float64(0), progress["percent"])

	// 4. Корзина опустела после оформления
	suite.getJSON("/api/v1/cart", &cartBody)
	require.Empty(suite.T(), cartBody["lines"])

	// 5. Заказ проходит статусы до завершения
	for _, status := range []string{"confirmed", "processing", "ready", "completed"} {
		suite.patchStatus(orderID, status)
	}

	var finished map[string]any
	suite.getJSON("/api/v1/orders/"+orderID, &finished)
	require.Equal(suite.T(), "completed", finished["status"])

	progress = finished["progress"].(map[string]any)
	require.Equal(suite.T(), float64(100), progress["percent"])
	require.Equal(suite.T(), "Livré", progress["label"])

	milestones := progress["milestones"].([]any)
	require.Len(suite.T(), milestones, 4)
	for _, raw := range milestones {
		milestone := raw.(map[string]any)
		require.True(suite.T(), milestone["reached"].(bool), "all milestones must be reached for a completed order")
	}

	// 6. Лента событий содержит оформление и каждую смену статуса
	timeline := finished["timeline"].([]any)
	require.Len(suite.T(), timeline, 5)
	first := timeline[0].(map[string]any)
	require.Equal(suite.T(), "order.placed", first["type"])
}

func (suite *StorefrontFlowTestSuite) TestPickupOrderHasNoDeliveryFee() {
	suite.postJSON("/api/v1/cart/items", map[string]any{"product_id": "1", "quantity": 2}, http.StatusCreated, nil)

	var order map[string]any
	suite.postJSON("/api/v1/checkout", map[string]any{
		"method":            "pickup",
		"pickup_slot_id":    "2",
		"payment_method_id": "2",
	}, http.StatusCreated, &order)

	require.Equal(suite.T(), "9.90", order["total"])
	require.Equal(suite.T(), "0.00", order["delivery_fee"])

	slot := order["pickup_slot"].(map[string]any)
	require.Equal(suite.T(), "Samedi 24 Juin", slot["date"])
}

func (suite *StorefrontFlowTestSuite) TestCheckoutReplayWithIdempotencyKey() {
	suite.postJSON("/api/v1/cart/items", map[string]any{"product_id": "3", "quantity": 1}, http.StatusCreated, nil)

	payload := map[string]any{
		"method":            "delivery",
		"address_id":        "2",
		"payment_method_id": "1",
	}

	first := suite.doCheckout(payload, "retry-key-42")
	require.Equal(suite.T(), http.StatusCreated, first.StatusCode)
	var firstOrder map[string]any
	suite.decode(first, &firstOrder)

	// Клиент повторяет запрос с тем же ключом: заказ не дублируется.
	second := suite.doCheckout(payload, "retry-key-42")
	require.Equal(suite.T(), http.StatusCreated, second.StatusCode)
	require.Equal(suite.T(), "true", second.Header.Get("Idempotency-Replayed"))
	var secondOrder map[string]any
	suite.decode(second, &secondOrder)
	require.Equal(suite.T(), firstOrder["id"], secondOrder["id"])

	var list []map[string]any
	suite.getJSON("/api/v1/orders", &list)
	require.Len(suite.T(), list, 1)
}

func (suite *StorefrontFlowTestSuite) TestCancelledOrderStopsProgress() {
	suite.postJSON("/api/v1/cart/items", map[string]any{"product_id": "2", "quantity": 1}, http.StatusCreated, nil)

	var order map[string]any
	suite.postJSON("/api/v1/checkout", map[string]any{
		"method":            "pickup",
		"pickup_slot_id":    "1",
		"payment_method_id": "1",
	}, http.StatusCreated, &order)
	orderID := order["id"].(string)

	suite.patchStatus(orderID, "cancelled")

	var cancelled map[string]any
	suite.getJSON("/api/v1/orders/"+orderID, &cancelled)

	progress := cancelled["progress"].(map[string]any)
	require.Equal(suite.T(), "Annulé", progress["label"])
	require.Equal(suite.T(), float64(0), progress["percent"])
	require.Equal(suite.T(), true, progress["cancelled"])
}

// Вспомогательные методы

func (suite *StorefrontFlowTestSuite) getJSON(path string, out any) {
	resp, err := suite.client.Get(suite.server.URL + path)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	suite.decode(resp, out)
}

func (suite *StorefrontFlowTestSuite) postJSON(path string, payload any, wantStatus int, out any) {
	body, err := json.Marshal(payload)
	require.NoError(suite.T(), err)

	resp, err := suite.client.Post(suite.server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), wantStatus, resp.StatusCode)
	if out != nil {
		suite.decode(resp, out)
	} else {
		resp.Body.Close()
	}
}

func (suite *StorefrontFlowTestSuite) doCheckout(payload any, idempotencyKey string) *http.Response {
	body, err := json.Marshal(payload)
	require.NoError(suite.T(), err)

	req, err := http.NewRequest(http.MethodPost, suite.server.URL+"/api/v1/checkout", bytes.NewReader(body))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := suite.client.Do(req)
	require.NoError(suite.T(), err)
	return resp
}

func (suite *StorefrontFlowTestSuite) patchStatus(orderID, status string) {
	body, err := json.Marshal(map[string]any{"status": status})
	require.NoError(suite.T(), err)

	url := fmt.Sprintf("%s/api/v1/orders/%s/status", suite.server.URL, orderID)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.client.Do(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}

func (suite *StorefrontFlowTestSuite) decode(resp *http.Response, out any) {
	defer resp.Body.Close()
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(out))
}

func TestStorefrontFlow(t *testing.T) {
	suite.Run(t, new(StorefrontFlowTestSuite))
}
