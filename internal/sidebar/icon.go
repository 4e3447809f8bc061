package sidebar

import (
	"fmt"
	"html/template"
)

// Icon is a symbolic reference to a glyph.
type Icon string

// Navigation and chrome glyphs (lucide outlines).
const (
	IconFileText    Icon = "file-text"
	IconBook        Icon = "book"
	IconSearch      Icon = "search"
	IconMic         Icon = "mic"
	IconBot         Icon = "bot"
	IconShuffle     Icon = "shuffle"
	IconSettings    Icon = "settings"
	IconWrench      Icon = "wrench"
	IconMenu        Icon = "menu"
	IconChevronLeft Icon = "chevron-left"
	IconLogOut      Icon = "log-out"
	IconCommand     Icon = "command"
	IconSun         Icon = "sun"
	IconMoon        Icon = "moon"
	IconMonitor     Icon = "monitor"
)

var glyphs = map[Icon]string{
	IconFileText: `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/>` +
		`<path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`,
	IconBook: `<path d="M4 19.5v-15A2.5 2.5 0 0 1 6.5 2H19a1 1 0 0 1 1 1v18a1 1 0 0 1-1 1H6.5a1 1 0 0 1 0-5H20"/>`,
	IconSearch: `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	IconMic: `<path d="M12 2a3 3 0 0 0-3 3v7a3 3 0 0 0 6 0V5a3 3 0 0 0-3-3Z"/>` +
		`<path d="M19 10v2a7 7 0 0 1-14 0v-2"/><line x1="12" x2="12" y1="19" y2="22"/>`,
	IconBot: `<path d="M12 8V4H8"/><rect width="16" height="12" x="4" y="8" rx="2"/>` +
		`<path d="M2 14h2"/><path d="M20 14h2"/><path d="M15 13v2"/><path d="M9 13v2"/>`,
	IconShuffle: `<path d="M2 18h1.4c1.3 0 2.5-.6 3.3-1.7l6.1-8.6c.7-1.1 2-1.7 3.3-1.7H22"/>` +
		`<path d="m18 2 4 4-4 4"/><path d="M2 6h1.9c1.5 0 2.9.9 3.6 2.2"/>` +
		`<path d="M22 18h-5.9c-1.3 0-2.6-.7-3.3-1.8l-.5-.8"/><path d="m18 14 4 4-4 4"/>`,
	IconSettings: `<path d="M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08` +
		`a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09` +
		`a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20` +
		`a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08` +
		`a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09` +
		`a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4` +
		`a2 2 0 0 0-2-2z"/><circle cx="12" cy="12" r="3"/>`,
	IconWrench: `<path d="M14.7 6.3a1 1 0 0 0 0 1.4l1.6 1.6a1 1 0 0 0 1.4 0l3.77-3.77a6 6 0 0 1-7.94 7.94` +
		`l-6.91 6.91a2.12 2.12 0 0 1-3-3l6.91-6.91a6 6 0 0 1 7.94-7.94l-3.76 3.76z"/>`,
	IconMenu:        `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	IconChevronLeft: `<path d="m15 18-6-6 6-6"/>`,
	IconLogOut: `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/>` +
		`<line x1="21" x2="9" y1="12" y2="12"/>`,
	IconCommand: `<path d="M15 6v12a3 3 0 1 0 3-3H6a3 3 0 1 0 3 3V6a3 3 0 1 0-3 3h12a3 3 0 1 0-3-3"/>`,
	IconSun: `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/>` +
		`<path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/>` +
		`<path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	IconMoon: `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	IconMonitor: `<rect width="20" height="14" x="2" y="3" rx="2"/><line x1="8" x2="16" y1="21" y2="21"/>` +
		`<line x1="12" x2="12" y1="17" y2="21"/>`,
}

// Known reports whether the icon has a glyph.
func (i Icon) Known() bool {
	_, ok := glyphs[i]
	return ok
}

// SVG renders the glyph as an inline svg element carrying the given css class.
// Unknown icons render an empty svg of the same size.
func (i Icon) SVG(class string) template.HTML {
	//nolint:gosec // glyph markup is static and class comes from templates
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 24 24" fill="none" `+
			`stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" `+
			`aria-hidden="true" data-icon="%s">%s</svg>`,
		template.HTMLEscapeString(class), template.HTMLEscapeString(string(i)), glyphs[i],
	))
}

// Glyph is a one character stand-in used by the terminal preview.
func (i Icon) Glyph() string {
	switch i {
	case IconFileText:
		return "F"
	case IconBook:
		return "B"
	case IconSearch:
		return "S"
	case IconMic:
		return "P"
	case IconBot:
		return "M"
	case IconShuffle:
		return "T"
	case IconSettings:
		return "*"
	case IconWrench:
		return "A"
	case IconLogOut:
		return "<"
	case IconMenu:
		return "="
	default:
		return "."
	}
}
