// Package emailjs is a minimal client for the EmailJS REST API, used as the
// contact form's delivery collaborator.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eringen/folio/contact"
)

// DefaultEndpoint is the EmailJS send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// maxErrorBody bounds how much of an error response is surfaced as text.
const maxErrorBody = 1 << 10

// Config holds the static delivery credentials.
type Config struct {
	ServiceID  string        `koanf:"service_id"`
	TemplateID string        `koanf:"template_id"`
	PublicKey  string        `koanf:"public_key"`
	PrivateKey string        `koanf:"private_key"` // optional access token for server-side calls
	Endpoint   string        `koanf:"endpoint"`
	Timeout    time.Duration `koanf:"timeout"`
}

// Validate checks that the identifiers needed for a send are present.
func (c Config) Validate() error {
	var missing []string
	if c.ServiceID == "" {
		missing = append(missing, "service_id")
	}
	if c.TemplateID == "" {
		missing = append(missing, "template_id")
	}
	if c.PublicKey == "" {
		missing = append(missing, "public_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("emailjs: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Client sends contact messages through EmailJS.
type Client struct {
	cfg  Config
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a Client for cfg.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send implements contact.Sender. Provider rejections come back as
// *contact.DeliveryError with the response body as Text.
func (c *Client) Send(ctx context.Context, msg contact.Fields) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:   c.cfg.ServiceID,
		TemplateID:  c.cfg.TemplateID,
		UserID:      c.cfg.PublicKey,
		AccessToken: c.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &contact.DeliveryError{Err: fmt.Errorf("emailjs: send: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &contact.DeliveryError{
		Text: strings.TrimSpace(string(text)),
		Err:  fmt.Errorf("emailjs: status %d", resp.StatusCode),
	}
}
