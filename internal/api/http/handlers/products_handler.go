package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/service"
)

// ProductsHandler exposes product endpoints.
type ProductsHandler struct {
	products *service.ProductService
	users    *service.UserService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService, users *service.UserService) *ProductsHandler {
	return &ProductsHandler{products: products, users: users}
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.SKU == "" || req.StoreID == "" {
		return fiber.NewError(http.StatusBadRequest, "name, sku and store_id required")
	}

	product, err := h.products.CreateProduct(c.Context(), user, productInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToProductResponse(product)})
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.products.UpdateProduct(c.Context(), user, c.Params("id"), productInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToProductResponse(product)})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	if err := h.products.DeleteProduct(c.Context(), user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "product deleted successfully"}})
}

// ListByStore handles GET /api/products/store/:storeId. Public read.
func (h *ProductsHandler) ListByStore(c *fiber.Ctx) error {
	products, err := h.products.ListByStore(c.Context(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToProductResponses(products)})
}

// Search handles GET /api/products/store/:storeId/search?q=. Public read.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("q")
	if keyword == "" {
		return fiber.NewError(http.StatusBadRequest, "q required")
	}

	products, err := h.products.SearchByKeyword(c.Context(), c.Params("storeId"), keyword)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToProductResponses(products)})
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		MRP:          req.MRP,
		SellingPrice: req.SellingPrice,
		Brand:        req.Brand,
		Image:        req.Image,
		StoreID:      req.StoreID,
		CategoryID:   req.CategoryID,
	}
}
