package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

const postingMessage = "Posting..."

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	taskID, err := h.s.Submit(c.Context(), GetWorkspaceID(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(transfer.PostAccepted{
		Message: postingMessage,
		TaskID:  taskID,
	})
}
