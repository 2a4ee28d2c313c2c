package delivery

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"gmls/domain"
)

type preferenceHandler struct {
	uc domain.PreferenceUseCase
}

func NewPreferenceDelivery(app *fiber.App, uc domain.PreferenceUseCase) {
	handler := &preferenceHandler{
		uc: uc,
	}

	route := app.Group("/preferences")

	route.Get("/", handler.deliveryGetPreferences)
	route.Put("/theme", handler.deliverySetTheme)
	route.Put("/onboarding", handler.deliverySetOnboarding)
}

func (ph *preferenceHandler) deliveryGetPreferences(c *fiber.Ctx) error {
	ctx := context.Background()

	theme, err := ph.uc.Theme(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	onboarding, err := ph.uc.OnboardingComplete(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"theme":               theme,
			"onboarding_complete": onboarding,
		},
	})
}

func (ph *preferenceHandler) deliverySetTheme(c *fiber.Ctx) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if err := ph.uc.SetTheme(context.Background(), req.Theme); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Theme updated successfully",
	})
}

func (ph *preferenceHandler) deliverySetOnboarding(c *fiber.Ctx) error {
	var req struct {
		Complete bool `json:"complete"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if err := ph.uc.SetOnboardingComplete(context.Background(), req.Complete); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Onboarding flag updated successfully",
	})
}
