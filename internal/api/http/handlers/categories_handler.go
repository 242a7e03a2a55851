package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/service"
)

// CategoriesHandler exposes category endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
	users      *service.UserService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService, users *service.UserService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories, users: users}
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.StoreID == "" {
		return fiber.NewError(http.StatusBadRequest, "name and store_id required")
	}

	category, err := h.categories.CreateCategory(c.Context(), user, req.StoreID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToCategoryResponse(category)})
}

// ListByStore handles GET /api/categories/store/:storeId.
func (h *CategoriesHandler) ListByStore(c *fiber.Ctx) error {
	categories, err := h.categories.ListByStore(c.Context(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToCategoryResponses(categories)})
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	category, err := h.categories.UpdateCategory(c.Context(), user, c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToCategoryResponse(category)})
}

// Moderate handles PUT /api/categories/:id/moderate.
func (h *CategoriesHandler) Moderate(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	category, err := h.categories.ModerateCategory(c.Context(), user, c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToCategoryResponse(category)})
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	if err := h.categories.DeleteCategory(c.Context(), user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "category deleted successfully"}})
}
