package handlers

import (
	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/crosspost/configs"
	"github.com/maheshrc27/crosspost/internal/api/middleware"
	"github.com/maheshrc27/crosspost/internal/view"
)

// Register mounts the dashboard and its JSON API on app. Every route runs
// inside a workspace session.
func Register(app *fiber.App, cfg config.Config, s PageServices, renderer *view.Renderer) {
	workspaceMiddleware := middleware.NewWorkspaceMiddleware(cfg, s.Workspaces)
	app.Use(workspaceMiddleware.Workspace())

	page := NewPageHandler(s, renderer, cfg.DashboardRecent)
	app.Get("/", page.Index)
	app.Post("/files", page.UploadFiles)
	app.Post("/files/remove", page.RemoveFile)
	app.Post("/platforms/:id/toggle", page.TogglePlatform)
	app.Post("/post", page.CreatePost)
	app.Get("/history/export", page.ExportHistory)
	app.Post("/history/clear", page.ClearHistory)
	app.Post("/settings", page.SaveSettings)

	history := NewHistoryHandler(s.History, s.Workspaces, renderer, cfg.BaseURL)
	app.Get("/history/fragment", history.HistoryFragment)
	app.Get("/feeds/history.rss", history.HistoryFeed)

	analytics := NewAnalyticsHandler(s.Analytics)
	app.Get("/analytics/chart.svg", analytics.Chart)

	api := app.Group("/api")

	workspace := NewWorkspaceHandler(s.Workspaces)
	api.Get("/workspace", workspace.GetWorkspace)
	api.Get("/toasts", workspace.DrainToasts)

	uploads := NewUploadHandler(s.Uploads, s.Workspaces)
	api.Post("/files", uploads.AddFiles)
	api.Delete("/files/:name", uploads.RemoveFile)

	platforms := NewPlatformHandler(s.Platforms, s.Workspaces)
	api.Get("/platforms", platforms.ListPlatforms)
	api.Post("/platforms/:id/toggle", platforms.TogglePlatform)

	post := NewPostHandler(s.Posts)
	api.Post("/posts", post.CreatePost)

	api.Get("/history", history.ListHistory)
	api.Get("/history/export", history.ExportHistory)
	api.Delete("/history", history.ClearHistory)

	settings := NewSettingsHandler(s.Settings, s.Workspaces)
	api.Get("/settings", settings.GetSettings)
	api.Put("/settings", settings.UpdateSettings)

	api.Get("/analytics", analytics.GetAnalytics)
}
