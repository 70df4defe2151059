package ledger

import (
	"zag-backend/internal/httperr"
	"zag-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateMovementRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// POST /api/stock-movements
func CreateMovementHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMovementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ProductID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "productId is required")
		}

		entry, err := svc.ApplyMovement(body.ProductID, models.MovementType(body.Type), body.Quantity, body.Notes)
		if err != nil {
			return httperr.From(err, "Stock movement could not be recorded")
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}

// GET /api/stock-entries
func ListEntriesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.History()
		if err != nil {
			return httperr.From(err, "Stock history could not be listed")
		}
		return c.JSON(entries)
	}
}

// GET /api/stock-levels
func ListLevelsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		levels, err := svc.Levels()
		if err != nil {
			return httperr.From(err, "Stock levels could not be listed")
		}
		return c.JSON(levels)
	}
}

// GET /api/stock-levels/:productId
func GetLevelHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("productId")
		quantity, err := svc.CurrentLevel(productID)
		if err != nil {
			return httperr.From(err, "Stock level could not be read")
		}
		return c.JSON(fiber.Map{
			"productId": productID,
			"quantity":  quantity,
		})
	}
}
