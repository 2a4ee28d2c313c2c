package delivery

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"gmls/domain"
)

type disasterHandler struct {
	uc domain.DisasterUseCase
}

func NewDisasterDelivery(app *fiber.App, uc domain.DisasterUseCase) {
	handler := &disasterHandler{
		uc: uc,
	}

	route := app.Group("/disaster")

	route.Get("/get_all", handler.deliveryGetAllDisasters)
	route.Post("/sync", handler.deliverySyncDisasters)
}

func (dh *disasterHandler) deliveryGetAllDisasters(c *fiber.Ctx) error {
	disasters, err := dh.uc.GetDisasters(context.Background())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    disasters,
	})
}

func (dh *disasterHandler) deliverySyncDisasters(c *fiber.Ctx) error {
	disasters, err := dh.uc.SyncDisasters(context.Background())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Could not sync disasters",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Disasters synced successfully",
		"data":    disasters,
	})
}
