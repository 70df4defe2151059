package sales

import (
	"zag-backend/internal/httperr"

	"github.com/gofiber/fiber/v2"
)

type RecordSaleRequest struct {
	ProductID  string   `json:"productId"`
	Quantity   int      `json:"quantity"`
	UnitPrice  *float64 `json:"unitPrice"`
	CustomerID string   `json:"customerId"`
}

// POST /api/sales
func RecordSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ProductID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "productId is required")
		}

		sale, err := svc.RecordSale(body.ProductID, body.Quantity, body.UnitPrice, body.CustomerID)
		if err != nil {
			return httperr.From(err, "Sale could not be recorded")
		}
		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales
func ListSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := svc.List()
		if err != nil {
			return httperr.From(err, "Sales could not be listed")
		}
		return c.JSON(all)
	}
}
