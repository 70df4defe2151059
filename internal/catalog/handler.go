package catalog

import (
	"zag-backend/internal/httperr"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	SKU           *string  `json:"sku"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SellingPrice  *float64 `json:"sellingPrice"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
}

// GET /api/products
func ListProductsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.List()
		if err != nil {
			return httperr.From(err, "Products could not be listed")
		}
		return c.JSON(products)
	}
}

// POST /api/products
func CreateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p, err := svc.Create(CreateProductInput{
			Name:          body.Name,
			SKU:           body.SKU,
			PurchasePrice: body.PurchasePrice,
			SellingPrice:  body.SellingPrice,
			Category:      body.Category,
			Description:   body.Description,
		})
		if err != nil {
			return httperr.From(err, "Product could not be created")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/products/:id
func UpdateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p, err := svc.Update(c.Params("id"), UpdateProductInput{
			Name:          body.Name,
			SKU:           body.SKU,
			PurchasePrice: body.PurchasePrice,
			SellingPrice:  body.SellingPrice,
			Category:      body.Category,
			Description:   body.Description,
		})
		if err != nil {
			return httperr.From(err, "Product could not be updated")
		}
		return c.JSON(p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return httperr.From(err, "Product could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
