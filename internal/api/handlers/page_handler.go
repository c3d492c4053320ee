package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/transfer"
	"github.com/maheshrc27/crosspost/internal/view"
)

const historyExportedMessage = "History exported!"

// PageHandler serves the server-rendered dashboard and the plain form
// endpoints behind it. Every form action redirects back to the page it came
// from; outcomes are reported as toasts on the next render.
type PageHandler struct {
	ws       service.WorkspaceService
	us       service.UploadService
	ps       service.PlatformService
	posts    service.PostService
	hs       service.HistoryService
	ss       service.SettingsService
	as       service.AnalyticsService
	renderer *view.Renderer
	recent   int
}

type PageServices struct {
	Workspaces service.WorkspaceService
	Uploads    service.UploadService
	Platforms  service.PlatformService
	Posts      service.PostService
	History    service.HistoryService
	Settings   service.SettingsService
	Analytics  service.AnalyticsService
}

func NewPageHandler(s PageServices, renderer *view.Renderer, recent int) *PageHandler {
	return &PageHandler{
		ws:       s.Workspaces,
		us:       s.Uploads,
		ps:       s.Platforms,
		posts:    s.Posts,
		hs:       s.History,
		ss:       s.Settings,
		as:       s.Analytics,
		renderer: renderer,
		recent:   recent,
	}
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	ctx := c.Context()
	workspaceID := GetWorkspaceID(c)

	w, err := h.ws.Get(workspaceID)
	if err != nil {
		return err
	}

	settings, err := h.ss.Get(ctx)
	if err != nil {
		slog.Error(err.Error())
		settings = models.DefaultSettings()
	}

	query := c.Query("q")
	var recent, filtered []*models.PostRecord
	if recent, err = h.hs.Recent(ctx, h.recent); err != nil {
		slog.Error(err.Error())
	}
	if filtered, err = h.hs.Filter(ctx, query); err != nil {
		slog.Error(err.Error())
	}

	platforms := h.ps.List()
	page := &view.Page{
		Nav:       view.Navigate(view.ViewDashboard, c.Query("view")),
		UserName:  settings.Name,
		Files:     view.NewFileList(w.Files),
		Cards:     view.NewPlatformCards(platforms, w),
		Posting:   w.Posting,
		Recent:    view.DashboardHistory(recent, h.recent),
		History:   view.FullHistory(filtered, query),
		Query:     query,
		Analytics: view.NewAnalyticsPanel(h.as.Snapshot(ctx)),
		Settings:  view.NewSettingsForm(settings, platforms),
		Toasts:    h.ws.DrainToasts(workspaceID),
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.renderer.Page(c.Response().BodyWriter(), page)
}

// back reports err as a toast, if any, and returns to the given view.
func (h *PageHandler) back(c *fiber.Ctx, target string, err error) error {
	if err != nil {
		h.ws.Notify(GetWorkspaceID(c), userMessage(err))
	}
	return c.Redirect("/?view="+target, fiber.StatusSeeOther)
}

func (h *PageHandler) UploadFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return h.back(c, view.ViewDashboard, nil)
	}
	_, err = h.us.Add(c.Context(), GetWorkspaceID(c), form.File["files"])
	return h.back(c, view.ViewDashboard, err)
}

func (h *PageHandler) RemoveFile(c *fiber.Ctx) error {
	err := h.us.Remove(c.Context(), GetWorkspaceID(c), c.FormValue("name"))
	return h.back(c, view.ViewDashboard, err)
}

func (h *PageHandler) TogglePlatform(c *fiber.Ctx) error {
	_, err := h.ws.TogglePlatform(GetWorkspaceID(c), utils.CopyString(c.Params("id")))
	return h.back(c, view.ViewDashboard, err)
}

func (h *PageHandler) CreatePost(c *fiber.Ctx) error {
	_, err := h.posts.Submit(c.Context(), GetWorkspaceID(c))
	return h.back(c, view.ViewDashboard, err)
}

func (h *PageHandler) ClearHistory(c *fiber.Ctx) error {
	err := h.hs.Clear(c.Context(), c.FormValue("confirm") == "true")
	if err == nil {
		h.ws.Notify(GetWorkspaceID(c), historyClearedMessage)
	}
	return h.back(c, view.ViewHistory, err)
}

func (h *PageHandler) ExportHistory(c *fiber.Ctx) error {
	export, err := h.hs.Export(c.Context())
	if err != nil {
		return h.back(c, view.ViewHistory, err)
	}

	h.ws.Notify(GetWorkspaceID(c), historyExportedMessage)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.FileName))
	return c.Send(export.Data)
}

// SaveSettings reads the settings form. Unchecked checkboxes are absent from
// the submission and save as false.
func (h *PageHandler) SaveSettings(c *fiber.Ctx) error {
	update := &transfer.SettingsUpdate{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		DefaultPlatform: c.FormValue("defaultPlatform"),
		AutoSave:        c.FormValue("autoSave") != "",
		Notifications:   c.FormValue("notifications") != "",
		Privacy:         c.FormValue("privacy"),
	}

	_, err := h.ss.Save(c.Context(), update)
	if err == nil {
		h.ws.Notify(GetWorkspaceID(c), settingsSavedMessage)
	}
	return h.back(c, view.ViewSettings, err)
}
