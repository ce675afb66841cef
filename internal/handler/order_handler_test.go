package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bizflow/internal/model"
	"bizflow/internal/repository"
	"bizflow/internal/service"
	"bizflow/internal/service/mocks"
	"bizflow/pkg/config"
	"bizflow/pkg/jwtutil"
	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "bizflow_test"}})
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	os.Exit(m.Run())
}

func newOrderContext(method, target, body string, tenantID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tenantID != 0 {
		c.Set("user_id", tenantID)
		c.Set("username", "tester")
	}
	return c, rec
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("returns 201 with the persisted order", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)

		placed := &model.Order{
			ID:          7,
			UserID:      1,
			CustomerID:  10,
			TotalAmount: decimal.RequireFromString("100.00"),
			Status:      model.StatusCompleted,
		}
		svc.On("PlaceOrder", mock.Anything, uint(1), service.PlaceOrderRequest{
			CustomerID: 10,
			Items:      []service.PlaceOrderItem{{ProductID: 100, Quantity: 4}},
		}).Return(placed, nil).Once()

		c, rec := newOrderContext(http.MethodPost, "/api/orders",
			`{"customer_id":10,"items":[{"product_id":100,"quantity":4}]}`, 1)

		assert.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_amount":"100"`)
		svc.AssertExpectations(t)
	})

	t.Run("folds the single product form into a one-item list", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)

		svc.On("PlaceOrder", mock.Anything, uint(1), service.PlaceOrderRequest{
			CustomerID: 10,
			Items:      []service.PlaceOrderItem{{ProductID: 100, Quantity: 2}},
		}).Return(&model.Order{ID: 8, CustomerID: 10}, nil).Once()

		c, rec := newOrderContext(http.MethodPost, "/api/orders",
			`{"customer_id":10,"product_id":100,"quantity":2}`, 1)

		assert.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("maps service errors to status codes", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantBody   string
		}{
			{"empty order", service.ErrEmptyOrder, http.StatusBadRequest, "at least one item"},
			{"invalid quantity", service.ErrInvalidQuantity, http.StatusBadRequest, "positive"},
			{"product not found", repository.ErrProductNotFound, http.StatusNotFound, "Product not found"},
			{"customer not found", repository.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
			{"insufficient stock", repository.ErrInsufficientStock, http.StatusConflict, "Not enough stock"},
			{"transaction failure", service.ErrOrderTransactionFailed, http.StatusInternalServerError, "Failed to place order"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := new(mocks.MockOrderService)
				h := NewOrderHandler(svc)
				svc.On("PlaceOrder", mock.Anything, uint(1), mock.Anything).
					Return(nil, tc.err).Once()

				c, rec := newOrderContext(http.MethodPost, "/api/orders",
					`{"customer_id":10,"items":[{"product_id":100,"quantity":1}]}`, 1)

				assert.NoError(t, h.CreateOrder(c))
				assert.Equal(t, tc.wantStatus, rec.Code)
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			})
		}
	})

	t.Run("transaction failure detail never reaches the client", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)
		svc.On("PlaceOrder", mock.Anything, uint(1), mock.Anything).
			Return(nil, service.ErrOrderTransactionFailed).Once()

		c, rec := newOrderContext(http.MethodPost, "/api/orders",
			`{"customer_id":10,"items":[{"product_id":100,"quantity":1}]}`, 1)

		assert.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "transaction")
	})

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)

		c, rec := newOrderContext(http.MethodPost, "/api/orders",
			`{"customer_id":10,"items":[{"product_id":100,"quantity":1}]}`, 0)

		assert.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "PlaceOrder")
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("returns the order with its items", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)
		svc.On("GetOrder", mock.Anything, uint(1), uint(7)).
			Return(&model.Order{
				ID:     7,
				UserID: 1,
				Items:  []model.OrderItem{{ProductID: 100, Quantity: 4}},
			}, nil).Once()

		c, rec := newOrderContext(http.MethodGet, "/api/orders/7", "", 1)
		c.SetParamNames("id")
		c.SetParamValues("7")

		assert.NoError(t, h.GetOrder(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"product_id":100`)
	})

	t.Run("unknown or cross-tenant order yields 404", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)
		svc.On("GetOrder", mock.Anything, uint(1), uint(99)).
			Return(nil, repository.ErrOrderNotFound).Once()

		c, rec := newOrderContext(http.MethodGet, "/api/orders/99", "", 1)
		c.SetParamNames("id")
		c.SetParamValues("99")

		assert.NoError(t, h.GetOrder(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		h := NewOrderHandler(svc)

		c, rec := newOrderContext(http.MethodGet, "/api/orders/abc", "", 1)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		assert.NoError(t, h.GetOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetOrder")
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := new(mocks.MockOrderService)
	h := NewOrderHandler(svc)
	svc.On("ListOrders", mock.Anything, uint(1)).
		Return([]model.Order{{ID: 2}, {ID: 1}}, nil).Once()

	c, rec := newOrderContext(http.MethodGet, "/api/orders", "", 1)

	assert.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
