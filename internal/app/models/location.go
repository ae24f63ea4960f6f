package models

// Location is the place a role is exercised at. Its city and address feed
// the role-level fields during bundle splitting.
type Location struct {
	ID      string
	Name    string
	City    string
	Address string
}
