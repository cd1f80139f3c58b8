// Package header renders the site header: brand link, hamburger toggle and
// navigation list. A Header owns a single open/closed flag for the narrow
// layout panel; everything else is derived from its configuration.
package header

import "github.com/a-h/templ"

// Header is one mounted instance of the site header.
type Header struct {
	cfg  Config
	open bool
}

// New creates a closed header. Missing options are filled from the defaults.
func New(opts ...Option) *Header {
	return &Header{cfg: resolve(opts)}
}

// IsOpen reports whether the navigation panel is expanded.
func (h *Header) IsOpen() bool {
	return h.open
}

// Toggle flips the panel between open and closed.
func (h *Header) Toggle() {
	h.open = !h.open
}

// Close collapses the panel. Closing a closed panel is a no-op.
func (h *Header) Close() {
	h.open = false
}

// ActivateLink records activation of the link at index. The panel always
// closes, whatever the index or viewport.
func (h *Header) ActivateLink(index int) (NavigationItem, bool) {
	h.Close()
	if index < 0 || index >= len(h.cfg.Items) {
		return NavigationItem{}, false
	}
	return h.cfg.Items[index], true
}

// Items returns the navigation entries in render order.
func (h *Header) Items() []NavigationItem {
	return cloneItems(h.cfg.Items)
}

// Logo returns the brand text.
func (h *Header) Logo() string {
	return h.cfg.Logo
}

// Component renders the header. A non-empty action is the URL prefix the
// client script posts toggle and link events to.
func (h *Header) Component(action string) templ.Component {
	return headerView(h, action)
}
