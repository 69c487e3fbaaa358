// Package console holds the chrome of the admin console: the page footer and
// the widgets of the top bar. Both are plain data so they can be loaded from
// configuration and rendered by any front end.
package console

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	projectURL   = "https://weilai.com"
	projectTitle = "软3区1后端开发练习"
	upstreamURL  = "https://github.com/ant-design/ant-design-pro"
)

// Link is one entry of the footer.
type Link struct {
	Key         string `json:"key" yaml:"key"`
	Title       string `json:"title" yaml:"title"`
	Href        string `json:"href" yaml:"href"`
	BlankTarget bool   `json:"blankTarget" yaml:"blank_target"`
}

// Footer is the page footer: an optional copyright line and a row of links.
type Footer struct {
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Links     []Link `json:"links" yaml:"links"`
}

// DefaultFooter returns the footer shipped with the console.
func DefaultFooter() Footer {
	return Footer{
		Links: []Link{
			{Key: "weilai", Title: projectTitle, Href: projectURL, BlankTarget: true},
			{Key: "github", Title: "github", Href: upstreamURL, BlankTarget: true},
			{Key: "smart storage", Title: projectTitle, Href: projectURL, BlankTarget: true},
		},
	}
}

// Validate checks that link keys are unique and every href is an absolute
// http(s) URL or a site-relative path.
func (f Footer) Validate() error {
	seen := make(map[string]bool, len(f.Links))
	var errs []error
	for i, l := range f.Links {
		if l.Key == "" {
			errs = append(errs, fmt.Errorf("footer link %d: key is required", i))
		} else if seen[l.Key] {
			errs = append(errs, fmt.Errorf("footer link %d: duplicate key %q", i, l.Key))
		}
		seen[l.Key] = true
		if err := checkHref(l.Href); err != nil {
			errs = append(errs, fmt.Errorf("footer link %q: %w", l.Key, err))
		}
	}
	return errors.Join(errs...)
}

// Link returns the link with the given key.
func (f Footer) Link(key string) (Link, bool) {
	for _, l := range f.Links {
		if l.Key == key {
			return l, true
		}
	}
	return Link{}, false
}

func checkHref(href string) error {
	if href == "" {
		return errors.New("href is required")
	}
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("invalid href: %w", err)
	}
	switch {
	case u.Scheme == "" && u.Host == "" && len(u.Path) > 0 && u.Path[0] == '/':
		return nil
	case (u.Scheme == "http" || u.Scheme == "https") && u.Host != "":
		return nil
	default:
		return fmt.Errorf("href %q must be an http(s) URL or an absolute path", href)
	}
}
