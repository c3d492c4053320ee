package handlers

import (
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
)

type UploadHandler struct {
	us service.UploadService
	ws service.WorkspaceService
}

func NewUploadHandler(us service.UploadService, ws service.WorkspaceService) *UploadHandler {
	return &UploadHandler{us: us, ws: ws}
}

func (h *UploadHandler) AddFiles(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	if _, err := h.us.Add(c.Context(), workspaceID, form.File["files"]); err != nil {
		return errorJSON(c, err)
	}

	w, err := h.ws.Get(workspaceID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(w)
}

func (h *UploadHandler) RemoveFile(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file name",
		})
	}

	if err := h.us.Remove(c.Context(), workspaceID, name); err != nil {
		return errorJSON(c, err)
	}

	w, err := h.ws.Get(workspaceID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(w)
}
