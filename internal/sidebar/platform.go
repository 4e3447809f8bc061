package sidebar

import "strings"

// Platform classifies the client for keyboard shortcut labels only.
type Platform int

const (
	// PlatformMac is assumed until detection reports otherwise.
	PlatformMac Platform = iota
	// PlatformOther covers every non-Mac client.
	PlatformOther
)

const (
	platformMac   = "mac"
	platformOther = "other"
)

// ClassifyPlatform maps a reported platform string (navigator.platform, GOOS, ...) to a Platform.
func ClassifyPlatform(reported string) Platform {
	if strings.Contains(strings.ToLower(reported), platformMac) {
		return PlatformMac
	}

	return PlatformOther
}

// ParsePlatform parses the stored form written by String. Unknown values yield the default.
func ParsePlatform(s string) Platform {
	if s == platformOther {
		return PlatformOther
	}

	return PlatformMac
}

// ShortcutPrefix is the modifier shown in front of the quick actions key.
func (p Platform) ShortcutPrefix() string {
	if p == PlatformOther {
		return "Ctrl+"
	}

	return "⌘"
}

// ShortcutLabel renders the quick actions shortcut, e.g. "⌘K" or "Ctrl+K".
func (p Platform) ShortcutLabel(key string) string {
	return p.ShortcutPrefix() + key
}

func (p Platform) String() string {
	if p == PlatformOther {
		return platformOther
	}

	return platformMac
}
