package storage

// Well-known storage keys.
const (
	// KeyProfiles holds the ordered profile registry.
	KeyProfiles = "profiles"
	// KeyCurrentProfile holds the id of the active profile.
	KeyCurrentProfile = "current-profile"
	// KeyTheme holds the UI theme preference (light or dark).
	KeyTheme = "theme"
	// KeyOnboarded marks that the onboarding overlay has been dismissed.
	KeyOnboarded = "onboarded"
)

// ProfileTransactionsKey returns the key for a profile's transaction list.
func ProfileTransactionsKey(profileID string) string {
	return "profile:" + profileID + ":transactions"
}

// ProfileCategoriesKey returns the key for a profile's category list.
func ProfileCategoriesKey(profileID string) string {
	return "profile:" + profileID + ":categories"
}

// ProfileSettingsKey returns the key for a profile's settings.
func ProfileSettingsKey(profileID string) string {
	return "profile:" + profileID + ":settings"
}
