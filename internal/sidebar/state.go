package sidebar

// State is the visual density of the sidebar.
type State int

const (
	// Expanded shows icons with inline labels and section titles.
	Expanded State = iota
	// Collapsed shows icons only; labels move into tooltips.
	Collapsed
)

const (
	widthCollapsed = "w-16"
	widthExpanded  = "w-64"
)

// StateFromCollapsed maps the persisted collapse flag to a State.
func StateFromCollapsed(collapsed bool) State {
	if collapsed {
		return Collapsed
	}

	return Expanded
}

// Collapsed reports whether s is the collapsed state.
func (s State) Collapsed() bool {
	return s == Collapsed
}

// Toggle returns the other state.
func (s State) Toggle() State {
	if s == Collapsed {
		return Expanded
	}

	return Collapsed
}

// WidthClass is the css width utility of the sidebar container.
func (s State) WidthClass() string {
	if s == Collapsed {
		return widthCollapsed
	}

	return widthExpanded
}

func (s State) String() string {
	if s == Collapsed {
		return "collapsed"
	}

	return "expanded"
}
