package pages

// Section is one anchored block of the page body.
type Section struct {
	ID    string
	Title string
}

// DefaultSections are the anchors the default navigation points at.
var DefaultSections = []Section{
	{ID: "home", Title: "Home"},
	{ID: "projects", Title: "Projects"},
	{ID: "contact", Title: "Contact"},
}
