// Package views renders the site's HTML. Templates are embedded html/template
// files exposed as templ components so handlers render them the same way
// whatever produced them.
package views

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"runtime/debug"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/state"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates *template.Template

func init() {
	templates = template.Must(template.New("views").Funcs(template.FuncMap{
		"markdown":     RenderMarkdown,
		"guard":        guarded,
		"navClass":     NavClass,
		"mediaURL":     MediaURL,
		"img":          LoadingImage,
		"card":         CardImage,
		"thumbURL":     ThumbURL,
		"pathEscape":   PathEscape,
		"personJsonLD": func(s Site, p catalog.Profile) template.JS { return template.JS(PersonJsonLD(s, p)) },
		"siteJsonLD":   func(s Site) template.JS { return template.JS(WebsiteJsonLD(s)) },
		"join":         strings.Join,
		"sectionID":    func(s state.Section) string { return string(s) },
	}).ParseFS(templateFS, "templates/*.html"))
}

// component exposes the named template as a templ component.
func component(name string, data any) templ.Component {
	t := templates.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("views: no template %q", name)
		})
	}
	return templ.FromGoHTML(t, data)
}

// RenderError is a fault raised while rendering a component.
type RenderError struct {
	Err   error
	Stack string
}

func (e *RenderError) Error() string { return "render: " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

// Guard renders child, falling back to fallback when child fails or panics.
// Output is buffered so a failing child never leaves partial markup behind.
func Guard(child, fallback templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := renderSafely(ctx, child, &buf); err != nil {
			return fallback.Render(ctx, w)
		}
		_, err := buf.WriteTo(w)
		return err
	})
}

// renderSafely renders cmp into w, turning a panic into a *RenderError.
func renderSafely(ctx context.Context, cmp templ.Component, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Err: fmt.Errorf("panic: %v", r), Stack: string(debug.Stack())}
		}
	}()
	if err := cmp.Render(ctx, w); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// guarded is the template-side Guard: a section that fails renders the
// "fault" placeholder in its place.
func guarded(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	cmp := Guard(component(name, data), component("fault", name))
	if err := cmp.Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Page is a complete HTML document.
func Page(d Document) templ.Component { return component("page", d) }

// AppContent is the #app container's content: the mounted view.
func AppContent(a App) templ.Component { return component("app", a) }

// NavBar is the Home View header.
func NavBar(n Nav) templ.Component { return component("nav", n) }

// ModalDialog is the project preview overlay.
func ModalDialog(m Modal) templ.Component { return component("modal", m) }

// BackToTop is the floating scroll-to-top control.
func BackToTop(visible bool) templ.Component { return component("backtotop", visible) }

// ContactSection is the contact form.
func ContactSection(f ContactForm) templ.Component { return component("contact_form", f) }

// ImageFrame is a resolved image wrapper.
func ImageFrame(img Image) templ.Component { return component("image", img) }

// RecoveryScreen is the fault boundary's full-page screen.
func RecoveryScreen(r Recovery) templ.Component { return component("recovery_page", r) }

// RecoveryFragment is the fault boundary's screen swapped into #app.
func RecoveryFragment(r Recovery) templ.Component { return component("recovery", r) }

// NotFound is the 404 page.
func NotFound(site Site) templ.Component { return component("notfound", site) }

// AdminLoginPage is the admin sign-in page.
func AdminLoginPage(d AdminLogin) templ.Component { return component("admin_login", d) }

// AdminDashboardPage lists contact deliveries.
func AdminDashboardPage(d AdminDashboard) templ.Component {
	return component("admin_dashboard", d)
}

// AdminDeliveries is the delivery table fragment.
func AdminDeliveries(d AdminDashboard) templ.Component {
	return component("admin_deliveries", d)
}
