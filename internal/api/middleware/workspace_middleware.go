package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/crosspost/configs"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const WorkspaceKey = "workspace_id"

type WorkspaceMiddleware struct {
	ws  service.WorkspaceService
	cfg config.Config
}

func NewWorkspaceMiddleware(cfg config.Config, ws service.WorkspaceService) *WorkspaceMiddleware {
	return &WorkspaceMiddleware{ws: ws, cfg: cfg}
}

// Workspace binds every request to a workspace. A missing or invalid session
// cookie starts a fresh workspace and replaces the cookie.
func (m *WorkspaceMiddleware) Workspace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var workspaceID string

		if tokenString := c.Cookies(m.cfg.CookieName); tokenString != "" {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err != nil {
				log.Printf("Session validation failed: %v", err)
			} else {
				workspaceID = claims.WorkspaceID
			}
		}

		if workspaceID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return err
			}
			token, err := utils.GenerateToken(m.cfg.SecretKey, id, m.cfg.SessionTTL)
			if err != nil {
				return err
			}
			c.Cookie(&fiber.Cookie{
				Name:     m.cfg.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.cfg.SessionTTL.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
			workspaceID = id
		}

		m.ws.Ensure(c.Context(), workspaceID)
		c.Locals(WorkspaceKey, workspaceID)
		return c.Next()
	}
}
