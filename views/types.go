package views

import (
	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/state"
)

// Site holds site-wide settings. Every handler passes this to templates so
// nothing is hardcoded.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	Dev         bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
}

// Session ties a rendered document to its server-held page state.
type Session struct {
	PageID string
	CSRF   string
}

// Nav is the header navigation of the Home View.
type Nav struct {
	Name      string
	Highlight state.Section
	MenuOpen  bool
}

// Sections lists the navigable sections in page order.
func (n Nav) Sections() []state.Section { return state.Sections }

// Active reports whether s is the highlighted section.
func (n Nav) Active(s state.Section) bool { return n.Highlight == s }

// Modal is the project preview overlay.
type Modal struct {
	Open    bool
	Project catalog.Project
}

// ContactForm is the contact section's form.
type ContactForm struct {
	Fields     contact.Fields
	Submitting bool
}

// Home is the marketing page.
type Home struct {
	Profile   catalog.Profile
	Projects  []catalog.Project
	Nav       Nav
	Modal     Modal
	BackToTop bool
	Form      ContactForm
}

// Projects is the standalone gallery.
type Projects struct {
	Name     string
	Projects []catalog.Project
	Modal    Modal
}

// App is the content of the #app container: exactly one of Home or Projects.
type App struct {
	View     state.View
	Home     *Home
	Projects *Projects
}

// IsHome reports whether the Home View is mounted.
func (a App) IsHome() bool { return a.View == state.ViewHome }

// Document is a full HTML page.
type Document struct {
	Site    Site
	Meta    PageMeta
	Session Session
	App     App
}

// Image is one resolved image wrapper.
type Image struct {
	Src    string
	Alt    string
	Thumb  string // project key; loaded cards show its thumbnail
	Class  string
	State  string
	Width  int
	Height int
}

// Recovery is the fault boundary's screen.
type Recovery struct {
	Site    Site
	Session Session
	Detail  string // shown only in dev mode
	Stack   string
}

// Delivery is one row of the admin delivery log.
type Delivery struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Status    string
	Detail    string
	CreatedAt string
}

// AdminDashboard lists contact deliveries.
type AdminDashboard struct {
	Site       Site
	CSRF       string
	Deliveries []Delivery
	Sent       int
	Failed     int
	Message    string
}

// AdminLogin is the admin sign-in form.
type AdminLogin struct {
	Site      Site
	CSRF      string
	ShowError bool
}
