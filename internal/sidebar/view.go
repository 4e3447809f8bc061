package sidebar

const (
	// DefaultShortcutKey is the key combined with the platform modifier to open quick actions.
	DefaultShortcutKey = "K"

	// QuickActionsHint describes what the command palette offers.
	QuickActionsHint = "Navigation, search, ask, theme"

	// SignOutLabel is the caption of the sign-out control.
	SignOutLabel = "Sign Out"

	themeTooltip = "Theme"

	variantActive   = "secondary"
	variantInactive = "ghost"
)

// Brand is the header brand mark.
type Brand struct {
	Name    string
	LogoURL string
}

// Input is everything the sidebar depends on for one render.
type Input struct {
	CurrentPath string
	State       State
	Platform    Platform
	Theme       Theme
	Brand       Brand
	ShortcutKey string
	CSRFToken   string
}

// Header is the brand row with the collapse toggle.
type Header struct {
	BrandName      string
	LogoURL        string
	ShowBrandLabel bool
	ToggleIcon     Icon
	// RevealOnHover is set when the toggle replaces the logo on hover instead of sitting beside it.
	RevealOnHover bool
}

// ItemView is a navigation entry ready for rendering.
type ItemView struct {
	Name      string
	Href      string
	Icon      Icon
	Active    bool
	Variant   string
	ShowLabel bool
	Tooltip   string
}

// SectionView is a section ready for rendering.
type SectionView struct {
	Title           string
	ShowTitle       bool
	SeparatorBefore bool
	Items           []ItemView
}

// ThemeControl is the theme toggle in the footer.
type ThemeControl struct {
	Current  Theme
	Next     Theme
	IconOnly bool
	Tooltip  string
}

// SignOutControl is the sign-out button in the footer.
type SignOutControl struct {
	Label     string
	ShowLabel bool
	Tooltip   string
}

// Footer holds the quick actions hint, theme toggle and sign-out control.
type Footer struct {
	ShowQuickActions bool
	ShortcutKey      string
	ShortcutLabel    string
	QuickActionsHint string
	Theme            ThemeControl
	SignOut          SignOutControl
}

// View is the fully resolved sidebar.
type View struct {
	State       State
	Collapsed   bool
	WidthClass  string
	CurrentPath string
	Platform    Platform
	CSRFToken   string
	Header      Header
	Sections    []SectionView
	Footer      Footer
}

// Build resolves the sidebar for one render. It is a pure function of its inputs.
func Build(menu []Section, in Input) View {
	collapsed := in.State.Collapsed()

	key := in.ShortcutKey
	if key == "" {
		key = DefaultShortcutKey
	}

	theme := ParseTheme(string(in.Theme))

	view := View{
		State:       in.State,
		Collapsed:   collapsed,
		WidthClass:  in.State.WidthClass(),
		CurrentPath: in.CurrentPath,
		Platform:    in.Platform,
		CSRFToken:   in.CSRFToken,
		Header: Header{
			BrandName:      in.Brand.Name,
			LogoURL:        in.Brand.LogoURL,
			ShowBrandLabel: !collapsed,
			ToggleIcon:     IconChevronLeft,
			RevealOnHover:  collapsed,
		},
		Sections: make([]SectionView, 0, len(menu)),
		Footer: Footer{
			ShowQuickActions: !collapsed,
			ShortcutKey:      key,
			ShortcutLabel:    in.Platform.ShortcutLabel(key),
			QuickActionsHint: QuickActionsHint,
			Theme: ThemeControl{
				Current:  theme,
				Next:     theme.Next(),
				IconOnly: collapsed,
			},
			SignOut: SignOutControl{
				Label:     SignOutLabel,
				ShowLabel: !collapsed,
			},
		},
	}

	if collapsed {
		view.Header.ToggleIcon = IconMenu
		view.Footer.Theme.Tooltip = themeTooltip
		view.Footer.SignOut.Tooltip = SignOutLabel
	}

	for index, section := range menu {
		sv := SectionView{
			Title:           section.Title,
			ShowTitle:       !collapsed,
			SeparatorBefore: index > 0,
			Items:           make([]ItemView, 0, len(section.Items)),
		}

		for _, item := range section.Items {
			iv := ItemView{
				Name:      item.Name,
				Href:      item.Href,
				Icon:      item.Icon,
				Active:    IsActive(in.CurrentPath, item.Href),
				Variant:   variantInactive,
				ShowLabel: !collapsed,
			}

			if iv.Active {
				iv.Variant = variantActive
			}

			if collapsed {
				iv.Tooltip = item.Name
			}

			sv.Items = append(sv.Items, iv)
		}

		view.Sections = append(view.Sections, sv)
	}

	return view
}

// SeparatorCount is the number of separators drawn between sections.
func (v View) SeparatorCount() int {
	count := 0
	for _, section := range v.Sections {
		if section.SeparatorBefore {
			count++
		}
	}

	return count
}

// ActiveItems lists the highlighted entries in menu order.
func (v View) ActiveItems() []ItemView {
	var active []ItemView
	for _, section := range v.Sections {
		for _, item := range section.Items {
			if item.Active {
				active = append(active, item)
			}
		}
	}

	return active
}
