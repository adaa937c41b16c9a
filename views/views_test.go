package views

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/state"
)

func render(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testDocument(sh *state.Shell) Document {
	return Document{
		Site:    Site{Name: "Folio", URL: "http://localhost:3000"},
		Meta:    PageMeta{Title: "Folio", URL: "http://localhost:3000/", OGType: "website"},
		Session: Session{PageID: "page-1", CSRF: "tok"},
		App:     NewApp(catalog.DefaultProfile(), catalog.Default(), sh),
	}
}

func TestPageRendersHomeView(t *testing.T) {
	sh := state.NewShell(catalog.Default(), state.NewScrollListeners())
	out := render(t, Page(testDocument(sh)))

	for _, want := range []string{
		`id="app"`, `id="nav"`, `id="home"`, `id="about"`, `id="about-heading"`,
		`id="services"`, `id="portfolio"`, `id="contact"`, `id="contact-form"`,
		`id="modal"`, `id="back-to-top"`, `X-Folio-Page`, `page-1`,
		"ViTech Accessories", "Pampered by Yuni",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "section-fault") {
		t.Error("no section should fail to render")
	}
	if strings.Contains(out, `role="dialog"`) {
		t.Error("modal should start closed")
	}
	if strings.Contains(out, `class="back-to-top"`) {
		t.Error("back-to-top should start hidden")
	}
}

func TestPageRendersProjectsView(t *testing.T) {
	sh := state.NewShell(catalog.Default(), state.NewScrollListeners())
	sh.GotoProjects()
	out := render(t, Page(testDocument(sh)))
	if !strings.Contains(out, "All Projects") || !strings.Contains(out, "Back to Home") {
		t.Fatal("projects view not rendered")
	}
	if strings.Contains(out, `id="nav"`) {
		t.Fatal("projects view has no section navigation")
	}
}

func TestNavHighlightsActiveSection(t *testing.T) {
	out := render(t, NavBar(Nav{Name: "Victor", Highlight: state.SectionServices, MenuOpen: true}))
	if strings.Count(out, "nav-link--active") != 1 {
		t.Fatalf("want exactly one active link:\n%s", out)
	}
	if !strings.Contains(out, "site-nav--open") {
		t.Fatal("open menu should be marked")
	}
	if !strings.Contains(out, `hx-post="/nav/services/"`) {
		t.Fatal("section link missing")
	}
}

func TestModalDialog(t *testing.T) {
	if out := render(t, ModalDialog(Modal{})); strings.Contains(out, "dialog") {
		t.Fatalf("closed modal rendered content: %s", out)
	}
	p, _ := catalog.Default().Get("vitech")
	out := render(t, ModalDialog(Modal{Open: true, Project: p}))
	for _, want := range []string{`role="dialog"`, "ViTech Accessories", "View Live Site", "https://victamu.github.io/ViTech/"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

func TestImageFrameStates(t *testing.T) {
	loaded := render(t, ImageFrame(Image{Src: "/images/A B.jpg", Alt: "A", State: "loaded", Width: 4, Height: 3}))
	if !strings.Contains(loaded, "<img") || !strings.Contains(loaded, `width="4"`) {
		t.Fatalf("loaded image: %s", loaded)
	}
	errored := render(t, ImageFrame(Image{Src: "/missing.jpg", Alt: "Missing", State: "errored"}))
	if strings.Contains(errored, "<img") || !strings.Contains(errored, "Image not available") {
		t.Fatalf("errored image: %s", errored)
	}
}

func TestContactSectionSubmitting(t *testing.T) {
	out := render(t, ContactSection(ContactForm{Fields: contact.Fields{Name: "Jane <b>"}, Submitting: true}))
	if !strings.Contains(out, "Sending...") || !strings.Contains(out, "disabled") {
		t.Fatalf("submitting form: %s", out)
	}
	if strings.Contains(out, "<b>") {
		t.Fatal("field values must be escaped")
	}
}

func TestRecoveryScreenDetail(t *testing.T) {
	out := render(t, RecoveryFragment(Recovery{}))
	if !strings.Contains(out, "Try Again") || !strings.Contains(out, "Reload Page") {
		t.Fatal("recovery actions missing")
	}
	if strings.Contains(out, "Error details") {
		t.Fatal("details hidden outside dev mode")
	}
	dev := render(t, RecoveryScreen(Recovery{Detail: "boom", Stack: "goroutine 1"}))
	if !strings.Contains(dev, "boom") || !strings.Contains(dev, "goroutine 1") {
		t.Fatal("dev mode should show the fault")
	}
}

func TestGuardFallsBack(t *testing.T) {
	fallback := templ.Raw("fallback")
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "partial")
		return errors.New("nope")
	})
	panicking := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		panic("kaboom")
	})
	for name, child := range map[string]templ.Component{"error": failing, "panic": panicking} {
		if out := render(t, Guard(child, fallback)); out != "fallback" {
			t.Errorf("%s: Guard rendered %q", name, out)
		}
	}
	if out := render(t, Guard(templ.Raw("ok"), fallback)); out != "ok" {
		t.Errorf("healthy child rendered %q", out)
	}
}

func TestMarkdownEscapesRawHTML(t *testing.T) {
	out, err := RenderMarkdown("**bold** <script>alert(1)</script>")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<strong>bold</strong>") {
		t.Fatalf("markdown not rendered: %s", out)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("raw HTML passed through: %s", out)
	}
}

func TestMediaURL(t *testing.T) {
	got := MediaURL(CardImage(catalog.Project{Key: "vitech", Title: "ViTech", Image: "/images/ViTech Landing Page.jpg"}))
	if !strings.HasPrefix(got, "/media/?") || !strings.Contains(got, "thumb=vitech") || !strings.Contains(got, "src=%2Fimages%2FViTech+Landing+Page.jpg") {
		t.Fatalf("MediaURL = %q", got)
	}
}

func TestUnknownTemplateErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := component("nope", nil).Render(context.Background(), &buf); err == nil {
		t.Fatal("unknown template should fail")
	}
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://folio.example.com", nil, "https://folio.example.com"},
		{"https://folio.example.com", []string{"projects"}, "https://folio.example.com/projects/"},
		{"https://folio.example.com/", []string{"projects"}, "https://folio.example.com/projects/"},
		{"https://folio.example.com/me", []string{"projects", "ai"}, "https://folio.example.com/me/projects/ai/"},
	}
	for _, tt := range tests {
		if got := SiteURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("SiteURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
