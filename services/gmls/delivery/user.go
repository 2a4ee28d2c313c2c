package delivery

import (
	"context"
	"errors"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"gmls/domain"
	"gmls/middleware"
)

type userHandler struct {
	uc domain.UserUseCase
}

func NewUserDelivery(app *fiber.App, uc domain.UserUseCase) {
	handler := &userHandler{
		uc: uc,
	}

	route := app.Group("/profile", middleware.AuthRequired)

	route.Get("/", handler.deliveryGetProfile)
	route.Put("/", handler.deliverySaveProfile)
	route.Post("/sync", handler.deliverySyncProfile)
	route.Put("/push_token", handler.deliveryUpdatePushToken)
	route.Delete("/", handler.deliveryLogout)
}

func (uh *userHandler) deliveryGetProfile(c *fiber.Ctx) error {
	user, err := uh.uc.GetUser(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "No cached profile",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

func (uh *userHandler) deliverySaveProfile(c *fiber.Ctx) error {
	var req domain.User
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if req.UID == "" {
		req.UID, _ = c.Locals("uid").(string)
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid profile data",
		})
	}

	if err := uh.uc.SaveProfile(context.Background(), &req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile saved successfully",
		"data":    req,
	})
}

func (uh *userHandler) deliverySyncProfile(c *fiber.Ctx) error {
	user, err := uh.uc.SyncProfile(context.Background())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Could not sync profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile synced successfully",
		"data":    user,
	})
}

func (uh *userHandler) deliveryUpdatePushToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token" valid:"required~Token is required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid token data",
		})
	}

	if err := uh.uc.UpdatePushToken(context.Background(), req.Token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Could not update push token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Push token updated successfully",
	})
}

func (uh *userHandler) deliveryLogout(c *fiber.Ctx) error {
	if err := uh.uc.Logout(context.Background()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Could not clear local data",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
