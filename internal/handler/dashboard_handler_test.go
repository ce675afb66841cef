package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizflow/internal/model"
	repomocks "bizflow/internal/repository/mocks"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	orders := new(repomocks.MockOrderRepository)
	products := new(repomocks.MockProductRepository)
	h := NewDashboardHandler(orders, products, 20)

	orders.On("TotalRevenue", mock.Anything, uint(1)).
		Return(decimal.RequireFromString("1225.00"), nil).Once()
	orders.On("Count", mock.Anything, uint(1)).Return(int64(3), nil).Once()
	products.On("ListLowStock", mock.Anything, uint(1), 20).
		Return([]model.Product{
			{ID: 2, Name: "Gaming Laptop", StockQuantity: 10},
		}, nil).Once()
	orders.On("ListRecent", mock.Anything, uint(1), 5).
		Return([]model.Order{{ID: 3}, {ID: 2}, {ID: 1}}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))

	assert.NoError(t, h.GetDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalRevenue  string          `json:"total_revenue"`
		TotalOrders   int64           `json:"total_orders"`
		LowStockCount int             `json:"low_stock_count"`
		LowStockItems []model.Product `json:"low_stock_items"`
		RecentOrders  []model.Order   `json:"recent_orders"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1225", resp.TotalRevenue)
	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.Equal(t, 1, resp.LowStockCount)
	assert.Len(t, resp.LowStockItems, 1)
	assert.Len(t, resp.RecentOrders, 3)

	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestDashboardHandler_Unauthenticated(t *testing.T) {
	orders := new(repomocks.MockOrderRepository)
	products := new(repomocks.MockProductRepository)
	h := NewDashboardHandler(orders, products, 20)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), rec)

	assert.NoError(t, h.GetDashboard(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	orders.AssertNotCalled(t, "TotalRevenue")
}
