package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/view"
)

type PlatformHandler struct {
	ps service.PlatformService
	ws service.WorkspaceService
}

func NewPlatformHandler(ps service.PlatformService, ws service.WorkspaceService) *PlatformHandler {
	return &PlatformHandler{ps: ps, ws: ws}
}

type platformCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	Selected  bool   `json:"selected"`
}

func (h *PlatformHandler) ListPlatforms(c *fiber.Ctx) error {
	w, err := h.ws.Get(GetWorkspaceID(c))
	if err != nil {
		return errorJSON(c, err)
	}

	cards := view.NewPlatformCards(h.ps.List(), w)
	list := make([]platformCard, 0, len(cards))
	for _, card := range cards {
		list = append(list, platformCard{
			ID:        card.ID,
			Name:      card.Name,
			Connected: !card.Disabled,
			Selected:  card.Selected,
		})
	}
	return c.JSON(list)
}

func (h *PlatformHandler) TogglePlatform(c *fiber.Ctx) error {
	platformID := utils.CopyString(c.Params("id"))
	selected, err := h.ws.TogglePlatform(GetWorkspaceID(c), platformID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"id":       platformID,
		"selected": selected,
	})
}
