package model

// Profile is an isolated namespace owning its own transactions,
// categories, and settings. Names may collide; IDs never do.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Settings holds per-profile preferences.
type Settings struct {
	// MonthlyGoal is the monthly expense ceiling. Zero means no goal set.
	MonthlyGoal float64 `json:"monthlyGoal"`
}
