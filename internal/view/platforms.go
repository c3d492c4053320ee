package view

import "github.com/maheshrc27/crosspost/internal/models"

type PlatformCard struct {
	ID       string
	Name     string
	Selected bool
	Disabled bool
}

func NewPlatformCards(platforms []models.Platform, w *models.Workspace) []PlatformCard {
	cards := make([]PlatformCard, 0, len(platforms))
	for _, p := range platforms {
		cards = append(cards, PlatformCard{
			ID:       p.ID,
			Name:     p.Name,
			Selected: w != nil && w.HasPlatform(p.ID),
			Disabled: !p.Connected,
		})
	}
	return cards
}
