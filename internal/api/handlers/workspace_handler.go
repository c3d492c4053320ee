package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
)

type WorkspaceHandler struct {
	ws service.WorkspaceService
}

func NewWorkspaceHandler(ws service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{ws: ws}
}

func (h *WorkspaceHandler) GetWorkspace(c *fiber.Ctx) error {
	w, err := h.ws.Get(GetWorkspaceID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(w)
}

func (h *WorkspaceHandler) DrainToasts(c *fiber.Ctx) error {
	toasts := h.ws.DrainToasts(GetWorkspaceID(c))
	if toasts == nil {
		toasts = []string{}
	}
	return c.JSON(fiber.Map{"toasts": toasts})
}
