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

// CategoryRequest defines the structure for category creation/update requests
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryHandler struct {
	categories repository.CategoryRepository
}

func NewCategoryHandler(categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListCategories retrieves all categories belonging to the acting tenant
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	categories, err := h.categories.List(c.Request().Context(), tenantID)
	if err != nil {
		log.Error("Failed to retrieve categories", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve categories"})
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	category, err := h.categories.GetByID(c.Request().Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			log.Warn("Category not found or does not belong to tenant",
				zap.Uint("category_id", id),
				zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
		}
		log.Error("Failed to get category", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve category"})
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory creates a new category for the acting tenant
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.categories.Create(c.Request().Context(), tenantID, &category); err != nil {
		log.Error("Failed to create category", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create category"})
	}

	prometheus.RecordEntityOperation("category", "create")
	log.Info("Category created successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates an existing category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	category := model.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.categories.Update(c.Request().Context(), tenantID, &category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
		}
		log.Error("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update category"})
	}

	prometheus.RecordEntityOperation("category", "update")
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category (soft delete)
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	if err := h.categories.Delete(c.Request().Context(), tenantID, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
		}
		log.Error("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete category"})
	}

	prometheus.RecordEntityOperation("category", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
