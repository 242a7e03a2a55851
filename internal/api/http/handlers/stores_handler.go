package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// StoresHandler exposes store endpoints.
type StoresHandler struct {
	stores *service.StoreService
	users  *service.UserService
}

// NewStoresHandler constructs handler.
func NewStoresHandler(stores *service.StoreService, users *service.UserService) *StoresHandler {
	return &StoresHandler{stores: stores, users: users}
}

// Create handles POST /api/stores.
func (h *StoresHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Brand == "" {
		return fiber.NewError(http.StatusBadRequest, "brand required")
	}

	store, err := h.stores.CreateStore(c.Context(), user, storeInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToStoreResponse(store)})
}

// GetByID handles GET /api/stores/:id.
func (h *StoresHandler) GetByID(c *fiber.Ctx) error {
	store, err := h.stores.GetStoreByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToStoreResponse(store)})
}

// List handles GET /api/stores.
func (h *StoresHandler) List(c *fiber.Ctx) error {
	stores, err := h.stores.ListStores(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToStoreResponses(stores)})
}

// GetByAdmin handles GET /api/stores/admin. Returns an empty list when
// the caller has not created a store yet.
func (h *StoresHandler) GetByAdmin(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	store, err := h.stores.GetStoreByAdmin(c.Context(), user)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
			return c.JSON(fiber.Map{"data": []dto.StoreResponse{}})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": []dto.StoreResponse{dto.ToStoreResponse(store)}})
}

// GetByEmployee handles GET /api/stores/employee.
func (h *StoresHandler) GetByEmployee(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	store, err := h.stores.GetStoreByEmployee(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToStoreResponse(store)})
}

// Update handles PUT /api/stores/:id.
func (h *StoresHandler) Update(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	store, err := h.stores.UpdateStore(c.Context(), user, c.Params("id"), storeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToStoreResponse(store)})
}

// Delete handles DELETE /api/stores/:id.
func (h *StoresHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	if err := h.stores.DeleteStore(c.Context(), user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "store deleted successfully"}})
}

// Moderate handles PUT /api/stores/:id/moderate. Route-gated to global
// admins.
func (h *StoresHandler) Moderate(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.ModerateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.StoreStatus(req.Status)
	switch status {
	case domain.StoreStatusPending, domain.StoreStatusActive, domain.StoreStatusBlocked:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown store status")
	}

	store, err := h.stores.ModerateStore(c.Context(), user, c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToStoreResponse(store)})
}

func storeInput(req dto.StoreRequest) service.StoreInput {
	input := service.StoreInput{
		Brand:       req.Brand,
		Description: req.Description,
		StoreType:   req.StoreType,
	}
	if req.Contact != nil {
		input.Contact = domain.StoreContact{
			Address: req.Contact.Address,
			Phone:   req.Contact.Phone,
			Email:   req.Contact.Email,
		}
	}
	return input
}
