package console

import (
	"errors"
	"fmt"
	"strings"
)

// WidgetKind names a top-bar widget.
type WidgetKind string

const (
	WidgetSelectLang WidgetKind = "select-lang"
	WidgetQuestion   WidgetKind = "question"
	WidgetHome       WidgetKind = "home"
)

const (
	// DefaultHelpURL is opened by the question widget.
	DefaultHelpURL = "https://pro.ant.design/docs/getting-started"
	// CurrentPathKey is the client-side storage key holding the active menu path.
	CurrentPathKey = "curpath"
	// HomePath is the console's landing route.
	HomePath = "/"
)

// ErrUnknownWidget is returned for a widget kind the console does not know.
var ErrUnknownWidget = errors.New("unknown widget")

// PathStore persists small key/value pairs on the client (local storage).
type PathStore interface {
	SetItem(key, value string) error
}

// Navigator moves the console to another route.
type Navigator interface {
	Push(path string) error
}

// Opener opens an external URL, normally in a new tab.
type Opener interface {
	Open(url string) error
}

// Widget is one entry of the top bar. Href is used by the question widget
// and Path by the home widget; both fall back to the defaults when empty.
type Widget struct {
	Kind  WidgetKind `json:"kind" yaml:"kind"`
	Title string     `json:"title,omitempty" yaml:"title,omitempty"`
	Href  string     `json:"href,omitempty" yaml:"href,omitempty"`
	Path  string     `json:"path,omitempty" yaml:"path,omitempty"`
}

// TopBar is the ordered widget set on the right of the header.
type TopBar struct {
	Widgets []Widget `json:"widgets" yaml:"widgets"`
}

// DefaultTopBar returns the language selector, the help link and the home
// button, in that order.
func DefaultTopBar() TopBar {
	return TopBar{Widgets: []Widget{
		{Kind: WidgetSelectLang, Title: "Language"},
		{Kind: WidgetQuestion, Title: "Help", Href: DefaultHelpURL},
		{Kind: WidgetHome, Title: "Home", Path: HomePath},
	}}
}

// Validate rejects unknown widget kinds and bad help links.
func (b TopBar) Validate() error {
	var errs []error
	for i, w := range b.Widgets {
		switch w.Kind {
		case WidgetSelectLang:
		case WidgetQuestion:
			if w.Href != "" {
				if err := checkHref(w.Href); err != nil {
					errs = append(errs, fmt.Errorf("widget %d: %w", i, err))
				}
			}
		case WidgetHome:
			if w.Path != "" && !strings.HasPrefix(w.Path, "/") {
				errs = append(errs, fmt.Errorf("widget %d: home path %q must start with /", i, w.Path))
			}
		default:
			errs = append(errs, fmt.Errorf("widget %d: %w %q", i, ErrUnknownWidget, w.Kind))
		}
	}
	return errors.Join(errs...)
}

// Widget returns the first widget of the given kind.
func (b TopBar) Widget(kind WidgetKind) (Widget, bool) {
	for _, w := range b.Widgets {
		if w.Kind == kind {
			return w, true
		}
	}
	return Widget{}, false
}

// Home is the action behind the home widget.
type Home struct {
	Path string
}

// Activate records the landing route as the current menu path and then
// navigates to it. Navigation is skipped when the path cannot be stored.
func (h Home) Activate(store PathStore, nav Navigator) error {
	path := h.Path
	if path == "" {
		path = HomePath
	}
	if err := store.SetItem(CurrentPathKey, path); err != nil {
		return fmt.Errorf("store %s: %w", CurrentPathKey, err)
	}
	if err := nav.Push(path); err != nil {
		return fmt.Errorf("navigate to %s: %w", path, err)
	}
	return nil
}

// Question is the action behind the help widget.
type Question struct {
	Href string
}

// Activate opens the help page.
func (q Question) Activate(opener Opener) error {
	href := q.Href
	if href == "" {
		href = DefaultHelpURL
	}
	if err := opener.Open(href); err != nil {
		return fmt.Errorf("open help %s: %w", href, err)
	}
	return nil
}

// Action dispatches a widget to its behaviour. The language selector is
// rendered by the host framework and has no action of its own.
func (w Widget) Action(store PathStore, nav Navigator, opener Opener) error {
	switch w.Kind {
	case WidgetHome:
		return Home{Path: w.Path}.Activate(store, nav)
	case WidgetQuestion:
		return Question{Href: w.Href}.Activate(opener)
	case WidgetSelectLang:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownWidget, w.Kind)
	}
}
