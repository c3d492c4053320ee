package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/api/middleware"
	"github.com/maheshrc27/crosspost/internal/service"
)

func GetWorkspaceID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.WorkspaceKey).(string)
	return id
}

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoFiles),
		errors.Is(err, service.ErrNoPlatforms),
		errors.Is(err, service.ErrConfirmationRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrUnknownPlatform),
		errors.Is(err, service.ErrWorkspaceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrPlatformNotConnected),
		errors.Is(err, service.ErrPostInFlight),
		errors.Is(err, service.ErrEmptyHistory):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// userMessage is the text shown to the user for err. Unexpected errors are
// logged and replaced with a generic message.
func userMessage(err error) string {
	if StatusFor(err) == fiber.StatusInternalServerError {
		slog.Error(err.Error())
		return "Something went wrong"
	}
	return err.Error()
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": userMessage(err),
	})
}
