package service

import (
	"slices"

	"github.com/maheshrc27/crosspost/internal/models"
)

var platformCatalog = []models.Platform{
	{ID: "instagram", Name: "Instagram"},
	{ID: "tiktok", Name: "TikTok"},
	{ID: "youtube", Name: "YouTube"},
	{ID: "facebook", Name: "Facebook"},
	{ID: "twitter", Name: "Twitter"},
	{ID: "linkedin", Name: "LinkedIn"},
}

type PlatformService interface {
	List() []models.Platform
	Get(id string) (models.Platform, bool)
	// Selectable returns nil when id names a connected platform.
	Selectable(id string) error
}

type platformService struct {
	platforms []models.Platform
}

func NewPlatformService(connected []string) PlatformService {
	platforms := make([]models.Platform, 0, len(platformCatalog))
	for _, p := range platformCatalog {
		p.Connected = slices.Contains(connected, p.ID)
		platforms = append(platforms, p)
	}
	return &platformService{platforms: platforms}
}

func (s *platformService) List() []models.Platform {
	return slices.Clone(s.platforms)
}

func (s *platformService) Get(id string) (models.Platform, bool) {
	for _, p := range s.platforms {
		if p.ID == id {
			return p, true
		}
	}
	return models.Platform{}, false
}

func (s *platformService) Selectable(id string) error {
	p, ok := s.Get(id)
	if !ok {
		return ErrUnknownPlatform
	}
	if !p.Connected {
		return ErrPlatformNotConnected
	}
	return nil
}
