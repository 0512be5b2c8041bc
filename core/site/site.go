// Package site describes the pages of the portfolio and builds the shared navigation.
package site

import (
	"fmt"
	"strings"

	"github.com/huangsam/folio/schema"
)

// Page is one entry of the navigation.
type Page struct {
	URL   string `json:"url"` // Relative to the base path unless absolute
	Title string `json:"title"`
}

// NavLink is a rendered navigation anchor.
type NavLink struct {
	Href    string `json:"href"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

// Pages are the site pages in navigation order.
var Pages = []Page{
	{URL: "", Title: "Home"},
	{URL: "projects/", Title: "Projects"},
	{URL: "resume/", Title: "Resume"},
	{URL: "contact/", Title: "Contact"},
	{URL: "meta/", Title: "Meta"},
}

// Base paths for local and published hosting.
const (
	LocalBasePath     = "/"
	PublishedBasePath = "/portfolio/"
)

// BasePath returns the base path for a request host. An override wins when set.
func BasePath(host, override string) string {
	if override != "" {
		return NormalizeBasePath(override)
	}
	switch hostname(host) {
	case "localhost", "127.0.0.1":
		return LocalBasePath
	default:
		return PublishedBasePath
	}
}

// NormalizeBasePath makes p start and end with a slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

// NavLinks builds the navigation for a page at currentPath. Relative page URLs
// are prefixed with base; the link pointing at currentPath is marked current.
func NavLinks(base, currentPath string) []NavLink {
	links := make([]NavLink, 0, len(Pages))
	for _, p := range Pages {
		href := p.URL
		if !strings.HasPrefix(href, "http") {
			href = base + href
		}
		links = append(links, NavLink{
			Href:    href,
			Title:   p.Title,
			Current: href == currentPath,
		})
	}
	return links
}

// CurrentPage returns the page at currentPath under base.
func CurrentPage(base, currentPath string) (Page, bool) {
	for _, link := range NavLinks(base, currentPath) {
		if link.Current {
			for _, p := range Pages {
				if p.Title == link.Title {
					return p, true
				}
			}
		}
	}
	return Page{}, false
}

// ValidateHeading checks that level is an HTML heading tag, h1 to h6.
func ValidateHeading(level string) (schema.HeadingLevel, error) {
	if level == "" {
		return schema.DefaultHeading, nil
	}
	h := schema.HeadingLevel(strings.ToLower(level))
	if _, ok := schema.ValidHeadingLevels[h]; !ok {
		return "", fmt.Errorf("invalid heading level %q, must be h1 to h6", level)
	}
	return h, nil
}

// ParseColorScheme checks that value is one of the theme selector values.
func ParseColorScheme(value string) (schema.ColorScheme, error) {
	s := schema.ColorScheme(strings.TrimSpace(value))
	if _, ok := schema.ValidColorSchemes[s]; !ok {
		return "", fmt.Errorf("invalid color scheme %q, must be one of %q, %q or %q",
			value, schema.AutoScheme, schema.LightScheme, schema.DarkScheme)
	}
	return s, nil
}

func hostname(host string) string {
	if strings.HasPrefix(host, "[") {
		if end := strings.Index(host, "]"); end > 0 {
			return host[1:end]
		}
	}
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[:i], ":") {
		return host[:i]
	}
	return host
}
