package delivery

import (
	"context"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"gmls/domain"
	"gmls/middleware"
)

type authHandler struct {
	auth domain.AuthService
}

func NewAuthDelivery(app *fiber.App, auth domain.AuthService) {
	handler := &authHandler{
		auth: auth,
	}

	route := app.Group("/login")
	route.Post("/user", handler.Login)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.auth.SignIn(context.Background(), req.UID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not establish session",
		})
	}

	token, err := middleware.GenerateJWT(req.UID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
		Token: token,
	})
}
