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

// SupplierRequest defines the structure for supplier creation/update requests
type SupplierRequest struct {
	Name string `json:"name"`
}

type SupplierHandler struct {
	suppliers repository.SupplierRepository
}

func NewSupplierHandler(suppliers repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// ListSuppliers retrieves all suppliers belonging to the acting tenant
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	suppliers, err := h.suppliers.List(c.Request().Context(), tenantID)
	if err != nil {
		log.Error("Failed to retrieve suppliers", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve suppliers"})
	}

	return c.JSON(http.StatusOK, suppliers)
}

// GetSupplier retrieves a specific supplier by ID
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
	}

	supplier, err := h.suppliers.GetByID(c.Request().Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			log.Warn("Supplier not found or does not belong to tenant",
				zap.Uint("supplier_id", id),
				zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
		}
		log.Error("Failed to get supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve supplier"})
	}

	return c.JSON(http.StatusOK, supplier)
}

// CreateSupplier creates a new supplier for the acting tenant
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	supplier := model.Supplier{Name: req.Name}
	if err := h.suppliers.Create(c.Request().Context(), tenantID, &supplier); err != nil {
		log.Error("Failed to create supplier", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create supplier"})
	}

	prometheus.RecordEntityOperation("supplier", "create")
	log.Info("Supplier created successfully",
		zap.Uint("supplier_id", supplier.ID),
		zap.String("name", supplier.Name),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier updates an existing supplier
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	supplier := model.Supplier{ID: id, Name: req.Name}
	if err := h.suppliers.Update(c.Request().Context(), tenantID, &supplier); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
		}
		log.Error("Failed to update supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update supplier"})
	}

	prometheus.RecordEntityOperation("supplier", "update")
	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier deletes a supplier (soft delete)
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier id"})
	}

	if err := h.suppliers.Delete(c.Request().Context(), tenantID, id); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Supplier not found"})
		}
		log.Error("Failed to delete supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete supplier"})
	}

	prometheus.RecordEntityOperation("supplier", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier deleted successfully"})
}
