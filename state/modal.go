package state

import "github.com/eringen/folio/catalog"

// Modal is the project detail overlay of one view. The selected key may be
// stale while the modal is closed; it is never read then.
type Modal struct {
	catalog *catalog.Catalog
	key     string
	open    bool
}

// NewModal returns a closed modal over c.
func NewModal(c *catalog.Catalog) *Modal {
	return &Modal{catalog: c}
}

// Open selects key and opens the modal. Opening while already open simply
// switches the selection. Unknown keys return ErrUnknownProject and leave
// the modal as it was.
func (m *Modal) Open(key string) error {
	if !m.catalog.Has(key) {
		return ErrUnknownProject
	}
	m.key = key
	m.open = true
	return nil
}

// Close dismisses the modal.
func (m *Modal) Close() {
	m.open = false
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Key returns the selected project key, or "" when closed.
func (m *Modal) Key() string {
	if !m.open {
		return ""
	}
	return m.key
}

// Selected returns the selected project while the modal is open.
func (m *Modal) Selected() (catalog.Project, bool) {
	if !m.open {
		return catalog.Project{}, false
	}
	return m.catalog.Get(m.key)
}
