package view

const (
	ViewDashboard = "dashboard"
	ViewHistory   = "history"
	ViewAnalytics = "analytics"
	ViewSettings  = "settings"
)

type NavLink struct {
	View   string
	Label  string
	Icon   string
	Active bool
}

type Navigation struct {
	Active string
	Title  string
	Links  []NavLink
}

var navLinks = []NavLink{
	{View: ViewDashboard, Label: "Dashboard", Icon: "fa-house"},
	{View: ViewHistory, Label: "History", Icon: "fa-clock-rotate-left"},
	{View: ViewAnalytics, Label: "Analytics", Icon: "fa-chart-simple"},
	{View: ViewSettings, Label: "Settings", Icon: "fa-gear"},
}

// Navigate switches from current to target. An empty or unknown target keeps
// the current view; an unknown current view falls back to the dashboard.
func Navigate(current, target string) Navigation {
	active := ViewDashboard
	if isView(current) {
		active = current
	}
	if isView(target) {
		active = target
	}

	nav := Navigation{Active: active, Links: make([]NavLink, len(navLinks))}
	for i, link := range navLinks {
		link.Active = link.View == active
		if link.Active {
			nav.Title = link.Label
		}
		nav.Links[i] = link
	}
	return nav
}

func isView(name string) bool {
	for _, link := range navLinks {
		if link.View == name {
			return true
		}
	}
	return false
}
