// Package sidebar builds the collapsible navigation sidebar shown on every page.
//
// The package holds the static navigation menu and a single Build function that turns
// the menu plus the request state (current path, collapse state, platform, theme) into a
// View the templates and the terminal preview render without further branching.
package sidebar

import "strings"

// Item is a single navigation entry.
type Item struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon Icon   `json:"icon"`
}

// Section groups navigation entries under a title.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

var defaultMenu = []Section{
	{
		Title: "Resources",
		Items: []Item{
			{Name: "Sources", Href: "/sources", Icon: IconFileText},
			{Name: "Notebooks", Href: "/notebooks", Icon: IconBook},
			{Name: "Ask and Search", Href: "/search", Icon: IconSearch},
		},
	},
	{
		Title: "Create",
		Items: []Item{
			{Name: "Podcasts", Href: "/podcasts", Icon: IconMic},
		},
	},
	{
		Title: "Manage",
		Items: []Item{
			{Name: "Models", Href: "/models", Icon: IconBot},
			{Name: "Transformations", Href: "/transformations", Icon: IconShuffle},
			{Name: "Settings", Href: "/settings", Icon: IconSettings},
			{Name: "Advanced", Href: "/advanced", Icon: IconWrench},
		},
	},
}

// DefaultMenu returns a copy of the application navigation menu.
func DefaultMenu() []Section {
	out := make([]Section, len(defaultMenu))
	for i, section := range defaultMenu {
		out[i] = Section{
			Title: section.Title,
			Items: append([]Item(nil), section.Items...),
		}
	}

	return out
}

// Items flattens the menu into its entries, keeping the menu order.
func Items(menu []Section) []Item {
	var items []Item
	for _, section := range menu {
		items = append(items, section.Items...)
	}

	return items
}

// Lookup returns the first entry that is active for the given path.
func Lookup(menu []Section, currentPath string) (Item, bool) {
	for _, item := range Items(menu) {
		if IsActive(currentPath, item.Href) {
			return item, true
		}
	}

	return Item{}, false
}

// IsActive reports whether an entry with the given href is highlighted for currentPath.
// An entry is active iff the path starts with its href.
func IsActive(currentPath, href string) bool {
	return strings.HasPrefix(currentPath, href)
}
