package tui

// refreshMsg tells the dashboard to recompute its summary from the
// session working set. Sent by the session's refresh hook after any
// mutation.
type refreshMsg struct{}

// profileSwitchedMsg reports the outcome of a profile cycle.
type profileSwitchedMsg struct {
	err error
}

// themeToggledMsg reports the outcome of a theme toggle.
type themeToggledMsg struct {
	name string
	err  error
}

// onboardedMsg reports that the onboarding overlay was dismissed and
// the flag persisted.
type onboardedMsg struct {
	err error
}
