package state

import (
	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
)

// HomeView is the marketing page: section navigation, mobile menu, project
// preview modal, contact form and the back-to-top control.
type HomeView struct {
	highlight     Section
	menuOpen      bool
	showBackToTop bool
	scroll        Section // pending smooth-scroll target, "" when none

	Modal *Modal
	Form  *contact.Form

	detach func()
}

// NewHomeView returns a Home View in its default state: home highlighted,
// menu closed, modal closed, empty form, back-to-top hidden.
func NewHomeView(c *catalog.Catalog) *HomeView {
	return &HomeView{
		highlight: SectionHome,
		Modal:     NewModal(c),
		Form:      contact.NewForm(),
	}
}

// Mount attaches the view's scroll listener.
func (h *HomeView) Mount(l *ScrollListeners) {
	if h.detach != nil {
		return
	}
	h.detach = l.Add(h.onScroll)
}

// Unmount detaches the scroll listener attached by Mount.
func (h *HomeView) Unmount() {
	if h.detach != nil {
		h.detach()
		h.detach = nil
	}
}

// Mounted reports whether the view currently listens to scroll events.
func (h *HomeView) Mounted() bool {
	return h.detach != nil
}

// onScroll recomputes back-to-top visibility. Only the about heading is
// tracked; the section highlight is left alone.
func (h *HomeView) onScroll(ev ScrollEvent) {
	if !ev.AboutPresent {
		return
	}
	h.showBackToTop = ev.AboutBottom < 0
}

// ScrollToSection highlights s, closes the mobile menu and requests a smooth
// scroll to s. The highlight is set whether or not the section is rendered.
func (h *HomeView) ScrollToSection(s Section) {
	h.highlight = s
	h.menuOpen = false
	h.scroll = s
}

// BackToTop is the floating control's action.
func (h *HomeView) BackToTop() {
	h.ScrollToSection(SectionHome)
}

// TakeScroll returns and clears the pending scroll request.
func (h *HomeView) TakeScroll() (Section, bool) {
	s := h.scroll
	h.scroll = ""
	return s, s != ""
}

// Highlight returns the active section.
func (h *HomeView) Highlight() Section {
	return h.highlight
}

// ToggleMenu opens or closes the mobile menu.
func (h *HomeView) ToggleMenu() {
	h.menuOpen = !h.menuOpen
}

// MenuOpen reports whether the mobile menu is open.
func (h *HomeView) MenuOpen() bool {
	return h.menuOpen
}

// ShowBackToTop reports whether the back-to-top control is visible.
func (h *HomeView) ShowBackToTop() bool {
	return h.showBackToTop
}
