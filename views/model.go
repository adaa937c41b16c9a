package views

import (
	"github.com/eringen/folio/catalog"
	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/state"
)

// NewNav snapshots the Home View's navigation state.
func NewNav(name string, h *state.HomeView) Nav {
	return Nav{Name: name, Highlight: h.Highlight(), MenuOpen: h.MenuOpen()}
}

// NewModal snapshots a modal. An open modal always carries its project.
func NewModal(m *state.Modal) Modal {
	p, ok := m.Selected()
	return Modal{Open: ok, Project: p}
}

// NewContactForm snapshots a contact form.
func NewContactForm(f *contact.Form) ContactForm {
	return ContactForm{Fields: f.Fields(), Submitting: f.Submitting()}
}

// NewHome snapshots a mounted Home View.
func NewHome(p catalog.Profile, c *catalog.Catalog, h *state.HomeView) *Home {
	return &Home{
		Profile:   p,
		Projects:  c.Projects(),
		Nav:       NewNav(p.ShortName, h),
		Modal:     NewModal(h.Modal),
		BackToTop: h.ShowBackToTop(),
		Form:      NewContactForm(h.Form),
	}
}

// NewProjects snapshots a mounted Projects View.
func NewProjects(p catalog.Profile, c *catalog.Catalog, v *state.ProjectsView) *Projects {
	return &Projects{
		Name:     p.Name,
		Projects: c.Projects(),
		Modal:    NewModal(v.Modal),
	}
}

// NewApp snapshots whichever view the Shell has mounted.
func NewApp(p catalog.Profile, c *catalog.Catalog, sh *state.Shell) App {
	a := App{View: sh.Current()}
	if sh.Current() == state.ViewProjects {
		a.Projects = NewProjects(p, c, sh.Projects())
	} else {
		a.Home = NewHome(p, c, sh.Home())
	}
	return a
}
