package views

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/eringen/folio/catalog"
)

// SiteURL resolves page path segments against the site's base URL. Page
// URLs end in a slash; the bare base is returned as configured.
func SiteURL(base string, segments ...string) string {
	if len(segments) == 0 {
		return base
	}
	u, err := url.JoinPath(base, segments...)
	if err != nil {
		return base
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// NavClass returns CSS classes for a navigation link, with active variant.
func NavClass(active bool) string {
	base := "nav-link px-3 py-2 text-sm font-medium transition"
	if active {
		base += " nav-link--active"
	}
	return base
}

// MediaURL is the wrapper endpoint resolving img for display.
func MediaURL(img Image) string {
	v := url.Values{}
	v.Set("src", img.Src)
	v.Set("alt", img.Alt)
	if img.Thumb != "" {
		v.Set("thumb", img.Thumb)
	}
	if img.Class != "" {
		v.Set("class", img.Class)
	}
	return "/media/?" + v.Encode()
}

// LoadingImage is an image wrapper that has not resolved yet.
func LoadingImage(src, alt string) Image {
	return Image{Src: src, Alt: alt, State: "loading"}
}

// CardImage is the loading wrapper of a gallery card, shown as a thumbnail.
func CardImage(p catalog.Project) Image {
	return Image{Src: p.Image, Alt: p.Title, Thumb: p.Key, Class: "project-card__image", State: "loading"}
}

// ThumbURL is the gallery thumbnail for a project.
func ThumbURL(key string) string {
	return "/thumbs/" + url.PathEscape(key)
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the profile.
func PersonJsonLD(site Site, p catalog.Profile) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      SiteURL(site.URL),
	}
	if p.Tagline != "" {
		data["description"] = p.Tagline
	}
	if p.Email != "" {
		data["email"] = "mailto:" + p.Email
	}
	var sameAs []string
	for _, l := range p.Links {
		sameAs = append(sameAs, l.URL)
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using site values.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      SiteURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
