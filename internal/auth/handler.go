package auth

import (
	"strings"
	"time"

	"zag-backend/internal/config"
	"zag-backend/internal/models"
	"zag-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterOwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register-owner
// One account per deployment; registration is refused once it exists.
func RegisterOwnerHandler(cfg *config.Config, st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterOwnerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
		}

		var users []models.User
		if err := st.Load(store.Users, &users); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "User store unavailable")
		}
		if len(users) > 0 {
			return fiber.NewError(fiber.StatusForbidden, "An owner account already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password could not be hashed")
		}

		user := models.User{
			ID:           models.NewID(),
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := st.Save(store.Users, append(users, user)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "User could not be created")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var users []models.User
		if err := st.Load(store.Users, &users); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "User store unavailable")
		}

		var user *models.User
		for i := range users {
			if users[i].Email == body.Email {
				user = &users[i]
				break
			}
		}
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be generated")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(CtxUserIDKey).(string)

		var users []models.User
		if err := st.Load(store.Users, &users); err == nil {
			for _, u := range users {
				if u.ID == userID {
					return c.JSON(fiber.Map{
						"user_id": u.ID,
						"name":    u.Name,
						"email":   u.Email,
					})
				}
			}
		}

		// Fallback: token claims only.
		return c.JSON(fiber.Map{
			"user_id": userID,
			"email":   c.Locals(CtxEmailKey),
		})
	}
}
