// Package navigation builds the tab strips of the page: the learning hub
// sections and the settings panel groups.
package navigation

// Item is one entry of a tab strip.
type Item struct {
	Title  string
	URL    string
	Value  string
	Active bool
}

// Context represents the navigation state of a rendered page.
type Context struct {
	PageTitle     string
	ActiveSection string
	Items         []Item
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Items:         make([]Item, 0),
	}
}

// Add appends an item. It is active when value matches the active section.
func (c *Context) Add(title, url, value string) *Context {
	c.Items = append(c.Items, Item{
		Title:  title,
		URL:    url,
		Value:  value,
		Active: value == c.ActiveSection,
	})

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// Tabs builds a context with one item per value, all posting to url.
// title maps a value to its label.
func Tabs(pageTitle, active, url string, values []string, title func(string) string) *Context {
	c := NewContext(pageTitle, active)
	for _, v := range values {
		c.Add(title(v), url, v)
	}

	return c
}
