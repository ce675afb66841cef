package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizflow/internal/model"
	"bizflow/internal/repository"
	repomocks "bizflow/internal/repository/mocks"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductContext(method, target, body string, tenantID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tenantID != 0 {
		c.Set("user_id", tenantID)
	}
	return c, rec
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("creates the product for the acting tenant", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)

		products.On("Create", mock.Anything, uint(1), mock.AnythingOfType("*model.Product")).
			Run(func(args mock.Arguments) {
				product := args.Get(2).(*model.Product)
				assert.Equal(t, "Wireless Mouse", product.Name)
				assert.Equal(t, "TECH-001", product.SKU)
				assert.True(t, product.Price.Equal(decimal.RequireFromString("25.00")))
				assert.Equal(t, 100, product.StockQuantity)
				product.ID = 1
			}).
			Return(nil).Once()

		c, rec := newProductContext(http.MethodPost, "/api/products",
			`{"name":"Wireless Mouse","sku":"TECH-001","price":"25.00","stock_quantity":100}`, 1)

		assert.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sku":"TECH-001"`)
		products.AssertExpectations(t)
	})

	t.Run("duplicate SKU within the tenant yields 409", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)
		products.On("Create", mock.Anything, uint(1), mock.AnythingOfType("*model.Product")).
			Return(repository.ErrDuplicateSKU).Once()

		c, rec := newProductContext(http.MethodPost, "/api/products",
			`{"name":"Wireless Mouse","sku":"TECH-001","price":"25.00","stock_quantity":100}`, 1)

		assert.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "SKU already exists")
	})

	t.Run("missing name yields 400 without touching storage", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)

		c, rec := newProductContext(http.MethodPost, "/api/products",
			`{"sku":"TECH-001","price":"25.00"}`, 1)

		assert.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		products.AssertNotCalled(t, "Create")
	})

	t.Run("negative price yields 400", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)

		c, rec := newProductContext(http.MethodPost, "/api/products",
			`{"name":"Bad","sku":"X-1","price":"-1.00","stock_quantity":1}`, 1)

		assert.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		products.AssertNotCalled(t, "Create")
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("cross-tenant lookup reads as not found", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)
		products.On("GetByID", mock.Anything, uint(2), uint(1)).
			Return(nil, repository.ErrProductNotFound).Once()

		c, rec := newProductContext(http.MethodGet, "/api/products/1", "", 2)
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns the product", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)
		products.On("GetByID", mock.Anything, uint(1), uint(1)).
			Return(&model.Product{ID: 1, Name: "Wireless Mouse", SKU: "TECH-001"}, nil).Once()

		c, rec := newProductContext(http.MethodGet, "/api/products/1", "", 1)
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Wireless Mouse")
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("passes the category filter through", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)
		categoryID := uint(3)
		products.On("List", mock.Anything, uint(1), &categoryID).
			Return([]model.Product{{ID: 1}}, nil).Once()

		c, rec := newProductContext(http.MethodGet, "/api/products?category_id=3", "", 1)

		assert.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		products.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric category filter", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)

		c, rec := newProductContext(http.MethodGet, "/api/products?category_id=abc", "", 1)

		assert.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		products.AssertNotCalled(t, "List")
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("update of a missing product yields 404", func(t *testing.T) {
		products := new(repomocks.MockProductRepository)
		h := NewProductHandler(products)
		products.On("Update", mock.Anything, uint(1), mock.AnythingOfType("*model.Product")).
			Return(repository.ErrProductNotFound).Once()

		c, rec := newProductContext(http.MethodPut, "/api/products/9",
			`{"name":"Wireless Mouse","sku":"TECH-001","price":"30.00","stock_quantity":90}`, 1)
		c.SetParamNames("id")
		c.SetParamValues("9")

		assert.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	products := new(repomocks.MockProductRepository)
	h := NewProductHandler(products)
	products.On("Delete", mock.Anything, uint(1), uint(4)).Return(nil).Once()

	c, rec := newProductContext(http.MethodDelete, "/api/products/4", "", 1)
	c.SetParamNames("id")
	c.SetParamValues("4")

	assert.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	products.AssertExpectations(t)
}
