// Package state is the navigation and modal state model of the site: which
// top-level view is shown, which section is highlighted, which project is
// open in a modal and whether the back-to-top control is visible.
//
// Every value here belongs to one page load (see Page). Nothing is shared
// between views and nothing outlives the page.
package state

import "errors"

// ErrUnknownProject is returned by Modal.Open for keys missing from the catalog.
var ErrUnknownProject = errors.New("state: unknown project")

// View selects the top-level view rendered by the Shell.
type View int

const (
	ViewHome View = iota
	ViewProjects
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewProjects:
		return "projects"
	default:
		return "unknown"
	}
}

// Section identifies one of the fixed sections of the Home View.
type Section string

const (
	SectionHome      Section = "home"
	SectionAbout     Section = "about"
	SectionServices  Section = "services"
	SectionPortfolio Section = "portfolio"
	SectionContact   Section = "contact"
)

// Sections lists the navigable sections in page order.
var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionServices,
	SectionPortfolio,
	SectionContact,
}

// ParseSection maps an identifier onto the fixed section set.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Label is the navigation text for the section.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionServices:
		return "Services"
	case SectionPortfolio:
		return "Portfolio"
	case SectionContact:
		return "Contact"
	default:
		return string(s)
	}
}
