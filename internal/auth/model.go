package auth

// RoleCaterer is the only staff role the dashboard knows about.
const RoleCaterer = "CATERER"

// User is the domain entity for a caterer staff account.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
