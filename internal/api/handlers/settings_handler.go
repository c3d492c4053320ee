package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

const settingsSavedMessage = "Settings saved."

type SettingsHandler struct {
	s  service.SettingsService
	ws service.WorkspaceService
}

func NewSettingsHandler(service service.SettingsService, ws service.WorkspaceService) *SettingsHandler {
	return &SettingsHandler{s: service, ws: ws}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.s.Get(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var update transfer.SettingsUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	settings, err := h.s.Save(c.Context(), &update)
	if err != nil {
		return errorJSON(c, err)
	}

	h.ws.Notify(GetWorkspaceID(c), settingsSavedMessage)
	return c.JSON(settings)
}
