package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/view"
)

const historyClearedMessage = "History cleared."

type HistoryHandler struct {
	hs       service.HistoryService
	ws       service.WorkspaceService
	renderer *view.Renderer
	baseURL  string
}

func NewHistoryHandler(hs service.HistoryService, ws service.WorkspaceService, renderer *view.Renderer, baseURL string) *HistoryHandler {
	return &HistoryHandler{hs: hs, ws: ws, renderer: renderer, baseURL: baseURL}
}

func (h *HistoryHandler) ListHistory(c *fiber.Ctx) error {
	records, err := h.hs.Filter(c.Context(), c.Query("q"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(records)
}

func (h *HistoryHandler) ExportHistory(c *fiber.Ctx) error {
	export, err := h.hs.Export(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.FileName))
	return c.Send(export.Data)
}

func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.hs.Clear(c.Context(), c.QueryBool("confirm")); err != nil {
		return errorJSON(c, err)
	}
	h.ws.Notify(GetWorkspaceID(c), historyClearedMessage)
	return c.SendStatus(fiber.StatusNoContent)
}

// HistoryFragment renders the history list markup for the live search box.
func (h *HistoryHandler) HistoryFragment(c *fiber.Ctx) error {
	query := c.Query("q")
	records, err := h.hs.Filter(c.Context(), query)
	if err != nil {
		return c.Status(StatusFor(err)).SendString(userMessage(err))
	}

	out, err := h.renderer.Fragment("history_list", view.FullHistory(records, query))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(out)
}

func (h *HistoryHandler) HistoryFeed(c *fiber.Ctx) error {
	rss, err := h.hs.Feed(c.Context(), h.baseURL)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(rss)
}
