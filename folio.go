// Package folio is a server-driven portfolio site built with Go, Echo and
// htmx. Each full page load gets its own in-memory navigation state; htmx
// requests mutate that state and swap back the affected fragments.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/emailjs"
	"github.com/eringen/folio/media"
	"github.com/eringen/folio/state"
)

// App is the central folio application. It wires together the page registry,
// content, contact delivery, store, handlers and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Pages     *state.Registry
	Catalog   *catalog.Catalog
	Profile   catalog.Profile
	Media     *media.Prober
	Submitter *contact.Submitter

	sender         contact.Sender
	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	thumbs         sync.Map // project key -> []byte
	customRoutes   []func(*App)
	setupOnce      sync.Once
	setupErr       error
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Catalog == nil {
		a.Catalog = catalog.Default()
	}
	if a.Profile.Name == "" {
		a.Profile = catalog.DefaultProfile()
	}
	if a.Config.Name == "" {
		a.Config.Name = a.Profile.Name
	}
	if a.Config.Description == "" {
		a.Config.Description = a.Profile.Tagline
	}
	if a.Config.Author == "" {
		a.Config.Author = a.Profile.Name
	}
	return a
}

// Setup initializes the store, page registry, delivery client, middleware and
// routes. Start calls it; tests call it directly.
func (a *App) Setup() error {
	a.setupOnce.Do(func() { a.setupErr = a.setup() })
	return a.setupErr
}

func (a *App) setup() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.Config.Dev {
		a.Echo.Debug = true
		a.Echo.Logger.SetLevel(log.DEBUG)
	} else {
		a.Echo.Logger.SetLevel(log.INFO)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.Pages = state.NewRegistry(a.Catalog, a.Config.PageTTL)
	a.Media = media.NewProber(os.DirFS(a.Config.StaticDir), a.Config.ProbeCacheTTL)

	if a.sender == nil {
		if err := a.Config.EmailJS.Validate(); err != nil {
			a.Echo.Logger.Warnf("contact form disabled: %v", err)
			a.sender = unconfiguredSender{}
		} else {
			a.sender = emailjs.New(a.Config.EmailJS)
		}
	}
	a.Submitter = contact.NewSubmitter(a.sender)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(a.Config.ContactLimit, a.Config.ContactWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// folio.js is shipped in the binary; everything else under /public comes
	// from the static directory.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.Static("/images", a.Config.StaticDir+"/images")
	if a.Profile.Resume.Path != "" {
		e.File(a.Profile.Resume.Path, a.Config.StaticDir+a.Profile.Resume.Path)
	}
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Full page loads start a fresh page.
	e.GET("/", a.handleHome)
	e.GET("/projects/", a.handleProjects)

	// Stateless fragments.
	e.GET("/media/", a.handleMedia)
	e.GET("/thumbs/:key", a.handleThumb)

	// Interactions against a live page. The middleware is attached per route
	// so unmatched paths still 404.
	live := a.pageMiddleware
	e.POST("/view/projects/", a.handleShowProjects, live)
	e.POST("/view/home/", a.handleShowHome, live)
	e.POST("/nav/:section/", a.handleNav, live)
	e.POST("/menu/toggle/", a.handleMenuToggle, live)
	e.POST("/modal/open/:key/", a.handleModalOpen, live)
	e.POST("/modal/close/", a.handleModalClose, live)
	e.POST("/scroll/", a.handleScroll, live)
	e.POST("/contact/", a.handleContact, live)
	e.POST("/recover/", a.handleRecover, live)

	if a.adminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.DELETE("/admin/delivery/:id/", a.handleAdminDelete)
	}
}

func (a *App) adminEnabled() bool {
	return a.Config.AdminPassword != ""
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Pages != nil {
		a.Pages.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Close()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// unconfiguredSender stands in for EmailJS when no credentials are set.
type unconfiguredSender struct{}

func (unconfiguredSender) Send(context.Context, contact.Fields) error {
	return &contact.DeliveryError{Text: "contact form is not configured"}
}
