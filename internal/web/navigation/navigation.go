// Package navigation provides the per page navigation state: title, breadcrumbs and the sidebar.
package navigation

import (
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	CurrentPath string
	Breadcrumbs []BreadcrumbItem
	Sidebar     sidebar.View
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, currentPath string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		CurrentPath: currentPath,
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}
}

// ForMenu creates a context for currentPath titled after the active menu entry,
// with Section / Item breadcrumbs. Paths outside the menu get fallbackTitle.
func ForMenu(menu []sidebar.Section, currentPath, fallbackTitle string) *Context {
	for _, section := range menu {
		for _, item := range section.Items {
			if !sidebar.IsActive(currentPath, item.Href) {
				continue
			}

			return NewContext(item.Name, currentPath).
				AddBreadcrumb(section.Title, section.Items[0].Href, false).
				AddBreadcrumb(item.Name, item.Href, true)
		}
	}

	return NewContext(fallbackTitle, currentPath)
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithSidebar attaches the resolved sidebar.
func (c *Context) WithSidebar(view sidebar.View) *Context {
	c.Sidebar = view
	return c
}

// IsActive checks if a link to href is highlighted on this page.
func (c *Context) IsActive(href string) bool {
	return sidebar.IsActive(c.CurrentPath, href)
}
