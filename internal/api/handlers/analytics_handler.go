package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/view"
)

type AnalyticsHandler struct {
	as service.AnalyticsService
}

func NewAnalyticsHandler(as service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{as: as}
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	data, err := h.as.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to load analytics",
		})
	}
	return c.JSON(data)
}

func (h *AnalyticsHandler) Chart(c *fiber.Ctx) error {
	data, err := h.as.Snapshot(c.Context())
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var buf bytes.Buffer
	if err := view.RenderChart(&buf, data); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}
