package handler

import (
	"errors"
	"net/http"

	"bizflow/internal/middleware"
	"bizflow/internal/model"
	"bizflow/internal/repository"
	"bizflow/pkg/logger"
	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ListCustomers retrieves all customers belonging to the acting tenant
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	customers, err := h.customers.List(c.Request().Context(), tenantID)
	if err != nil {
		log.Error("Failed to retrieve customers", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve customers"})
	}

	return c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
	}

	customer, err := h.customers.GetByID(c.Request().Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			log.Warn("Customer not found or does not belong to tenant",
				zap.Uint("customer_id", id),
				zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
		}
		log.Error("Failed to get customer", zap.Uint("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve customer"})
	}

	return c.JSON(http.StatusOK, customer)
}

// CreateCustomer creates a new customer for the acting tenant
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	customer := model.Customer{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	}
	if err := h.customers.Create(c.Request().Context(), tenantID, &customer); err != nil {
		log.Error("Failed to create customer", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create customer"})
	}

	prometheus.RecordEntityOperation("customer", "create")
	log.Info("Customer created successfully",
		zap.Uint("customer_id", customer.ID),
		zap.String("name", customer.Name),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer updates an existing customer
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Uint("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	customer := model.Customer{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	}
	if err := h.customers.Update(c.Request().Context(), tenantID, &customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
		}
		log.Error("Failed to update customer", zap.Uint("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update customer"})
	}

	prometheus.RecordEntityOperation("customer", "update")
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer (soft delete)
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
	}

	if err := h.customers.Delete(c.Request().Context(), tenantID, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
		}
		log.Error("Failed to delete customer", zap.Uint("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete customer"})
	}

	prometheus.RecordEntityOperation("customer", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Customer deleted successfully"})
}
