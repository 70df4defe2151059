package stats

import (
	"zag-backend/internal/httperr"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stats
func DashboardHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Dashboard()
		if err != nil {
			return httperr.From(err, "Dashboard stats could not be computed")
		}
		return c.JSON(out)
	}
}

// GET /api/sales/summary
func SalesSummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Summary()
		if err != nil {
			return httperr.From(err, "Sales summary could not be computed")
		}
		return c.JSON(out)
	}
}
