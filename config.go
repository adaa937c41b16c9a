package folio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/emailjs"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_ADDR.
const EnvPrefix = "FOLIO_"

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default: the profile's name)
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Meta description (default: the profile's tagline)
	Author      string `koanf:"author"`      // Author name for JSON-LD

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	StaticDir    string `koanf:"static_dir"`    // Images, résumé and assets (default "public")
	DatabasePath string `koanf:"database_path"` // SQLite path (default "data/folio.db")
	Dev          bool   `koanf:"dev"`           // Debug logging and fault details on the recovery screen

	PageTTL       time.Duration `koanf:"page_ttl"`        // Idle page eviction (default 30min)
	ProbeCacheTTL time.Duration `koanf:"probe_cache_ttl"` // Image probe cache (default 5min)

	ContactLimit  int           `koanf:"contact_limit"`  // Submissions per IP per window (default 5)
	ContactWindow time.Duration `koanf:"contact_window"` // (default 10min)

	AdminPassword string `koanf:"admin_password"` // Enables the admin delivery log when set
	SessionSecret string `koanf:"session_secret"` // Required with AdminPassword
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	EmailJS emailjs.Config `koanf:"emailjs"`
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.PageTTL == 0 {
		c.PageTTL = 30 * time.Minute
	}
	if c.ProbeCacheTTL == 0 {
		c.ProbeCacheTTL = 5 * time.Minute
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = 10 * time.Minute
	}
}

// Validate checks settings that cannot be defaulted.
func (c *SiteConfig) Validate() error {
	if c.AdminPassword != "" && c.SessionSecret == "" {
		return fmt.Errorf("folio: session_secret is required when admin_password is set")
	}
	if c.ContactLimit < 0 {
		return fmt.Errorf("folio: contact_limit must be non-negative")
	}
	return nil
}

// LoadConfig reads configuration from the given YAML file, when it exists,
// then overlays environment variable overrides (FOLIO_*). Nested keys use a
// double underscore or the emailjs_ prefix: FOLIO_EMAILJS_SERVICE_ID.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps FOLIO_EMAILJS_SERVICE_ID to emailjs.service_id and FOLIO_ADDR
// to addr.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if strings.HasPrefix(key, "emailjs_") {
		key = "emailjs." + strings.TrimPrefix(key, "emailjs_")
	}
	return key
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the static directory from the config.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithCatalog replaces the embedded project catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// WithProfile replaces the embedded profile.
func WithProfile(p catalog.Profile) Option {
	return func(a *App) {
		a.Profile = p
	}
}

// WithSender replaces the EmailJS client as the contact form's delivery
// collaborator.
func WithSender(s contact.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}
