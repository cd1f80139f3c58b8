package header

// DefaultLogo is the brand text used when no logo is supplied.
const DefaultLogo = "My Portfolio"

// NavigationItem is one entry of the navigation list.
type NavigationItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// defaultItems keeps the historical second entry (id "name", label "contact")
// as shipped; it duplicates the #contact target of the last entry.
var defaultItems = []NavigationItem{
	{ID: "home", Label: "Home", Href: "#home"},
	{ID: "name", Label: "contact", Href: "#contact"},
	{ID: "projects", Label: "Projects", Href: "#projects"},
	{ID: "contact", Label: "Contact", Href: "#contact"},
}

// DefaultItems returns a copy of the built-in navigation set.
func DefaultItems() []NavigationItem {
	return cloneItems(defaultItems)
}

// Config holds the resolved header configuration.
type Config struct {
	Items []NavigationItem
	Logo  string

	itemsSet bool
	logoSet  bool
}

// Option configures a Header. Each field falls back to its default on its own.
type Option func(*Config)

// WithItems supplies the navigation entries. Passing none renders an empty list.
func WithItems(items ...NavigationItem) Option {
	return func(cfg *Config) {
		cfg.Items = cloneItems(items)
		cfg.itemsSet = true
	}
}

// WithLogo supplies the brand text.
func WithLogo(logo string) Option {
	return func(cfg *Config) {
		cfg.Logo = logo
		cfg.logoSet = true
	}
}

func resolve(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.itemsSet {
		cfg.Items = DefaultItems()
	}
	if !cfg.logoSet {
		cfg.Logo = DefaultLogo
	}
	return cfg
}

func cloneItems(items []NavigationItem) []NavigationItem {
	out := make([]NavigationItem, len(items))
	copy(out, items)
	return out
}
