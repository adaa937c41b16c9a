package folio

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/media"
	"github.com/eringen/folio/state"
	"github.com/eringen/folio/views"
)

const msgTooManyMessages = "Too many messages. Please try again later."

// Served when the static directory has no robots.txt.
const robotsTxt = `User-agent: *
Allow: /
Disallow: /admin/

Sitemap: %s
`

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Dev:         a.Config.Dev,
	}
}

func (a *App) session(c echo.Context) views.Session {
	s := views.Session{CSRF: CsrfToken(c)}
	if p := pageFrom(c); p != nil {
		s.PageID = p.ID
	}
	return s
}

// renderDocument renders page as a full HTML document.
func (a *App) renderDocument(c echo.Context, p *state.Page, meta views.PageMeta) error {
	c.Set(pageKey, p)
	var app views.App
	p.Do(func(sh *state.Shell) {
		app = views.NewApp(a.Profile, a.Catalog, sh)
	})
	return Render(c, views.Page(views.Document{
		Site:    a.site(),
		Meta:    meta,
		Session: a.session(c),
		App:     app,
	}))
}

// renderApp re-renders the #app container after fn has run against the Shell.
func (a *App) renderApp(c echo.Context, fn func(*state.Shell)) error {
	var app views.App
	pageFrom(c).Do(func(sh *state.Shell) {
		fn(sh)
		app = views.NewApp(a.Profile, a.Catalog, sh)
	})
	return Render(c, views.AppContent(app))
}

// withHome runs fn against the mounted Home View. It fails with 409 when the
// Projects View is showing.
func withHome(c echo.Context, fn func(*state.HomeView)) error {
	var mounted bool
	pageFrom(c).Do(func(sh *state.Shell) {
		if home := sh.Home(); home != nil {
			mounted = true
			fn(home)
		}
	})
	if !mounted {
		return echo.NewHTTPError(http.StatusConflict, "home view is not mounted")
	}
	return nil
}

func (a *App) handleHome(c echo.Context) error {
	return a.renderDocument(c, a.Pages.Create(), views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         views.SiteURL(a.Config.URL),
		OGType:      "profile",
	})
}

func (a *App) handleProjects(c echo.Context) error {
	p := a.Pages.Create()
	p.Do(func(sh *state.Shell) { sh.GotoProjects() })
	return a.renderDocument(c, p, views.PageMeta{
		Title:       "Projects | " + a.Config.Name,
		Description: "Projects by " + a.Profile.Name,
		URL:         views.SiteURL(a.Config.URL, "projects"),
		OGType:      "website",
	})
}

func (a *App) handleShowProjects(c echo.Context) error {
	return a.renderApp(c, func(sh *state.Shell) { sh.GotoProjects() })
}

func (a *App) handleShowHome(c echo.Context) error {
	return a.renderApp(c, func(sh *state.Shell) { sh.GotoHome() })
}

func (a *App) handleNav(c echo.Context) error {
	section, ok := state.ParseSection(c.Param("section"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown section")
	}
	var nav views.Nav
	var target state.Section
	var scroll bool
	err := withHome(c, func(home *state.HomeView) {
		home.ScrollToSection(section)
		target, scroll = home.TakeScroll()
		nav = views.NewNav(a.Profile.ShortName, home)
	})
	if err != nil {
		return err
	}
	if scroll {
		trigger(c, eventScroll, scrollDetail{Section: string(target)})
	}
	return Render(c, views.NavBar(nav))
}

func (a *App) handleMenuToggle(c echo.Context) error {
	var nav views.Nav
	err := withHome(c, func(home *state.HomeView) {
		home.ToggleMenu()
		nav = views.NewNav(a.Profile.ShortName, home)
	})
	if err != nil {
		return err
	}
	return Render(c, views.NavBar(nav))
}

func (a *App) handleModalOpen(c echo.Context) error {
	key := c.Param("key")
	var modal views.Modal
	var err error
	pageFrom(c).Do(func(sh *state.Shell) {
		m := sh.ActiveModal()
		err = m.Open(key)
		modal = views.NewModal(m)
	})
	if errors.Is(err, state.ErrUnknownProject) {
		c.Logger().Warnf("modal: unknown project %q", key)
		return echo.NewHTTPError(http.StatusNotFound, "unknown project")
	}
	if err != nil {
		return err
	}
	return Render(c, views.ModalDialog(modal))
}

func (a *App) handleModalClose(c echo.Context) error {
	var modal views.Modal
	pageFrom(c).Do(func(sh *state.Shell) {
		m := sh.ActiveModal()
		m.Close()
		modal = views.NewModal(m)
	})
	return Render(c, views.ModalDialog(modal))
}

func (a *App) handleScroll(c echo.Context) error {
	ev := state.ScrollEvent{}
	ev.AboutPresent, _ = strconv.ParseBool(c.FormValue("about_present"))
	if ev.AboutPresent {
		bottom, err := strconv.ParseFloat(c.FormValue("about_bottom"), 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid about_bottom")
		}
		ev.AboutBottom = bottom
	}
	p := pageFrom(c)
	p.Scroll(ev)

	var visible bool
	p.Do(func(sh *state.Shell) {
		if home := sh.Home(); home != nil {
			visible = home.ShowBackToTop()
		}
	})
	return Render(c, views.BackToTop(visible))
}

func (a *App) handleContact(c echo.Context) error {
	fields := contact.Fields{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}

	var form *contact.Form
	if err := withHome(c, func(home *state.HomeView) { form = home.Form }); err != nil {
		return err
	}

	// A form still submitting keeps its fields; Submit then reports it as
	// in flight.
	inFlight := false
	if err := form.Update(fields); err != nil {
		if !errors.Is(err, contact.ErrInFlight) {
			return err
		}
		inFlight = true
	}

	// Only messages that would reach the sender count against the limit.
	if !inFlight && contact.Validate(fields) == nil && !a.contactLimiter.Allow(c.RealIP()) {
		trigger(c, eventNotify, notifyDetail{Kind: string(contact.NotifyError), Message: msgTooManyMessages})
		return Render(c, views.ContactSection(views.NewContactForm(form)))
	}

	// The page lock is not held while the message is delivered, so the
	// rest of the page stays interactive.
	res, err := a.Submitter.Submit(c.Request().Context(), form)
	if err != nil {
		c.Logger().Debugf("contact: %v", err)
	}
	if res.Delivery != nil {
		if rerr := a.Store.RecordDelivery(*res.Delivery); rerr != nil {
			c.Logger().Errorf("record delivery %s: %v", res.Delivery.ID, rerr)
		}
		if res.Delivery.Outcome == contact.DeliveryFailed {
			c.Logger().Warnf("contact delivery %s failed: %s", res.Delivery.ID, res.Delivery.Detail)
		}
	}
	if res.Notification.Message != "" {
		trigger(c, eventNotify, notifyDetail{
			Kind:    string(res.Notification.Kind),
			Message: res.Notification.Message,
		})
	}
	return Render(c, views.ContactSection(views.NewContactForm(form)))
}

func (a *App) handleRecover(c echo.Context) error {
	p := pageFrom(c)
	p.Reset()
	return a.renderApp(c, func(*state.Shell) {})
}

func (a *App) handleMedia(c echo.Context) error {
	src := c.QueryParam("src")
	img := media.NewImage(src, c.QueryParam("alt"))
	a.Media.Load(c.Request().Context(), img)

	out := views.Image{
		Src:   img.Src,
		Alt:   img.Alt,
		Class: c.QueryParam("class"),
		State: img.State().String(),
	}
	switch img.State() {
	case media.StateLoaded:
		info := img.Info()
		out.Width, out.Height = info.Width, info.Height
		if key := c.QueryParam("thumb"); key != "" && a.Catalog.Has(key) {
			out.Src = views.ThumbURL(key)
			out.Width, out.Height = 0, 0
		}
	case media.StateErrored:
		var rle *media.ResourceLoadError
		if errors.As(img.Err(), &rle) && !rle.NotFound() {
			c.Logger().Warnf("media: %v", rle)
		} else {
			c.Logger().Debugf("media: %v", img.Err())
		}
	}
	return Render(c, views.ImageFrame(out))
}

func (a *App) handleThumb(c echo.Context) error {
	key := c.Param("key")
	p, ok := a.Catalog.Get(key)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown project")
	}
	if data, ok := a.thumbs.Load(key); ok {
		return c.Blob(http.StatusOK, "image/jpeg", data.([]byte))
	}
	data, _, err := a.Media.ThumbnailFile(p.Image, media.MaxThumbWidth)
	if err != nil {
		c.Logger().Warnf("thumbnail %s: %v", key, err)
		return echo.NewHTTPError(http.StatusNotFound, "image not available")
	}
	a.thumbs.Store(key, data)
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	sitemap := strings.TrimSuffix(views.SiteURL(a.Config.URL), "/") + "/sitemap.xml"
	return c.String(http.StatusOK, fmt.Sprintf(robotsTxt, sitemap))
}
