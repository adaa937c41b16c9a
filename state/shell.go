package state

import "github.com/eringen/folio/catalog"

// ProjectsView is the standalone gallery page. Its modal is independent of
// the Home View's.
type ProjectsView struct {
	Modal *Modal
}

// NewProjectsView returns a gallery with its modal closed.
func NewProjectsView(c *catalog.Catalog) *ProjectsView {
	return &ProjectsView{Modal: NewModal(c)}
}

// Shell decides which top-level view is rendered. Switching views unmounts
// the old one and mounts a fresh instance of the new one, so a view's state
// starts from its defaults every time it is entered.
type Shell struct {
	catalog   *catalog.Catalog
	listeners *ScrollListeners
	current   View
	home      *HomeView
	projects  *ProjectsView
}

// NewShell returns a Shell showing a freshly mounted Home View.
func NewShell(c *catalog.Catalog, l *ScrollListeners) *Shell {
	s := &Shell{catalog: c, listeners: l}
	s.mountHome()
	return s
}

// Current returns the active view.
func (s *Shell) Current() View {
	return s.current
}

// GotoProjects shows the Projects View.
func (s *Shell) GotoProjects() {
	if s.current == ViewProjects {
		return
	}
	s.home.Unmount()
	s.home = nil
	s.projects = NewProjectsView(s.catalog)
	s.current = ViewProjects
}

// GotoHome shows the Home View.
func (s *Shell) GotoHome() {
	if s.current == ViewHome {
		return
	}
	s.projects = nil
	s.mountHome()
}

func (s *Shell) mountHome() {
	s.home = NewHomeView(s.catalog)
	s.home.Mount(s.listeners)
	s.current = ViewHome
}

// Home returns the mounted Home View, or nil when the Projects View is active.
func (s *Shell) Home() *HomeView {
	return s.home
}

// Projects returns the mounted Projects View, or nil when Home is active.
func (s *Shell) Projects() *ProjectsView {
	return s.projects
}

// ActiveModal returns the modal of whichever view is mounted.
func (s *Shell) ActiveModal() *Modal {
	if s.current == ViewProjects {
		return s.projects.Modal
	}
	return s.home.Modal
}
