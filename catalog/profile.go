package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile is the owner-facing copy of the site: hero, about, services and
// contact details. The state core never reads it.
type Profile struct {
	Name         string    `yaml:"name"`
	ShortName    string    `yaml:"short_name"`
	Tagline      string    `yaml:"tagline"`
	Portrait     string    `yaml:"portrait"`
	Location     string    `yaml:"location"`
	Availability string    `yaml:"availability"`
	About        string    `yaml:"about"` // Markdown
	Skills       []string  `yaml:"skills"`
	Experience   []Entry   `yaml:"experience"`
	Education    []Entry   `yaml:"education"`
	Services     []Service `yaml:"services"`
	Email        string    `yaml:"email"`
	Phone        string    `yaml:"phone"`
	Links        []Link    `yaml:"links"`
	Resume       Resume    `yaml:"resume"`
}

// Entry is a single experience or education item.
type Entry struct {
	Role    string   `yaml:"role"`
	Badge   string   `yaml:"badge"`
	Where   string   `yaml:"where"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// Service is one offering in the services section. Minor services render in
// the compact row below the main cards.
type Service struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Summary  string `yaml:"summary"`
	Minor    bool   `yaml:"minor"`
}

// Link is an outbound professional-profile link.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

// Resume points at the downloadable CV under the static directory.
type Resume struct {
	Path         string `yaml:"path"`
	DownloadName string `yaml:"download_name"`
}

// ParseProfile decodes a profile document.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if p.Name == "" {
		return Profile{}, fmt.Errorf("profile: name is required")
	}
	if p.ShortName == "" {
		p.ShortName = p.Name
	}
	return p, nil
}

// DefaultProfile returns the profile embedded in the binary.
func DefaultProfile() Profile {
	data, err := dataFS.ReadFile("data/profile.yaml")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded profile: %v", err))
	}
	p, err := ParseProfile(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return p
}

// MainServices returns the services shown as full cards.
func (p Profile) MainServices() []Service {
	var out []Service
	for _, s := range p.Services {
		if !s.Minor {
			out = append(out, s)
		}
	}
	return out
}

// MinorServices returns the services shown in the compact row.
func (p Profile) MinorServices() []Service {
	var out []Service
	for _, s := range p.Services {
		if s.Minor {
			out = append(out, s)
		}
	}
	return out
}
