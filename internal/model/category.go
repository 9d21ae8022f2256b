package model

// Category is a per-profile spending category. Categories are created
// the first time a transaction references a new name and are never
// deleted; names are unique per profile under case-insensitive
// comparison.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
