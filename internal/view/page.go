package view

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/web"
)

const ToastTimeoutMillis = 3000

type SettingsForm struct {
	Name            string
	Email           string
	DefaultPlatform string
	AutoSave        bool
	Notifications   bool
	Privacy         string
	Platforms       []models.Platform
	PrivacyOptions  []string
}

func NewSettingsForm(s *models.UserSettings, platforms []models.Platform) SettingsForm {
	return SettingsForm{
		Name:            s.Name,
		Email:           s.Email,
		DefaultPlatform: s.DefaultPlatform,
		AutoSave:        s.AutoSave,
		Notifications:   s.Notifications,
		Privacy:         s.Privacy,
		Platforms:       platforms,
		PrivacyOptions:  []string{models.PrivacyPublic, models.PrivacyFriends, models.PrivacyPrivate},
	}
}

// Page is everything the dashboard template needs for one render.
type Page struct {
	Nav          Navigation
	UserName     string
	Files        FileList
	Cards        []PlatformCard
	Posting      bool
	Recent       HistoryList
	History      HistoryList
	Query        string
	Analytics    AnalyticsPanel
	Settings     SettingsForm
	Toasts       []string
	ToastTimeout int
}

type Renderer struct {
	tpls *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpls, err := template.New("").Funcs(template.FuncMap{
		"pct": func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64) + "%"
		},
	}).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpls: tpls}, nil
}

func (r *Renderer) Page(w io.Writer, p *Page) error {
	p.ToastTimeout = ToastTimeoutMillis
	return r.tpls.ExecuteTemplate(w, "index.html", p)
}

// Fragment renders a named partial template, used for the live history search.
func (r *Renderer) Fragment(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpls.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
