package handlers

import (
	"errors"
	"log"

	"tasklist/internal/middleware"
	"tasklist/internal/models"
	"tasklist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for todo items. Every route requires
// an authenticated caller.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the item routes behind the auth middleware.
func (h *ItemHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	todoRoutes := router.Group("/todos", auth)
	todoRoutes.Get("/", h.HandleListItems)
	todoRoutes.Post("/", h.HandleCreateItem)
	todoRoutes.Get("/:id", h.HandleGetItem)
	todoRoutes.Patch("/:id", h.HandleUpdateItem)
	todoRoutes.Delete("/:id", h.HandleDeleteItem)
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c *fiber.Ctx) *models.User {
	return c.Locals(middleware.CurrentUserKey).(*models.User)
}

// HandleCreateItem creates a new item owned by the caller.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req models.ItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	item, err := h.service.Create(currentUser(c), req)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleListItems returns a page of the caller's own items.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	items, err := h.service.List(currentUser(c), offset, limit)
	if err != nil {
		log.Printf("Error listing items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
		})
	}
	return c.JSON(items)
}

// HandleGetItem returns a single item if the caller may read it.
func (h *ItemHandler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.Get(currentUser(c), c.Params("id"))
	if err != nil {
		return itemErrorResponse(c, err, "Could not retrieve item")
	}
	return c.JSON(item)
}

// HandleUpdateItem applies a partial update to an item the caller owns.
func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req models.ItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	item, err := h.service.Update(currentUser(c), c.Params("id"), req)
	if err != nil {
		return itemErrorResponse(c, err, "Could not update item")
	}
	return c.JSON(item)
}

// HandleDeleteItem removes an item the caller owns.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUser(c), c.Params("id")); err != nil {
		return itemErrorResponse(c, err, "Could not delete item")
	}
	return c.JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}

// itemErrorResponse maps item service failures onto HTTP statuses:
// missing items are 404, permission failures are 400.
func itemErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Item not found",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Not enough permissions",
		})
	}
	log.Printf("Item operation failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
	})
}
