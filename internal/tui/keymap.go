package tui

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit        []string
	NextProfile []string
	ToggleTheme []string
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        []string{"q", "esc", "ctrl+c"},
		NextProfile: []string{"p"},
		ToggleTheme: []string{"t"},
	}
}

func matches(key string, bindings []string) bool {
	for _, b := range bindings {
		if key == b {
			return true
		}
	}
	return false
}
