package customers

import (
	"zag-backend/internal/httperr"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
}

// GET /api/customers
func ListCustomersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers, err := svc.List()
		if err != nil {
			return httperr.From(err, "Customers could not be listed")
		}
		return c.JSON(customers)
	}
}

// POST /api/customers
func CreateCustomerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		customer, err := svc.Create(CreateCustomerInput{
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Username:  body.Username,
			Email:     body.Email,
		})
		if err != nil {
			return httperr.From(err, "Customer could not be created")
		}
		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		customer, err := svc.Update(c.Params("id"), UpdateCustomerInput{
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Username:  body.Username,
			Email:     body.Email,
		})
		if err != nil {
			return httperr.From(err, "Customer could not be updated")
		}
		return c.JSON(customer)
	}
}

// DELETE /api/customers/:id
func DeleteCustomerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		removed, err := svc.Delete(c.Params("id"))
		if err != nil {
			return httperr.From(err, "Customer could not be deleted")
		}
		if !removed {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/customers/suggest-username?first_name=&last_name=
func SuggestUsernameHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, err := svc.SuggestUsername(c.Query("first_name"), c.Query("last_name"))
		if err != nil {
			return httperr.From(err, "Username could not be suggested")
		}
		return c.JSON(fiber.Map{"username": username})
	}
}
