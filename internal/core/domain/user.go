package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidRole reports whether r is one of the two access tiers.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User models an account in the identity table. The password is stored and
// listed in plaintext: the admin "Password Records" page exposes it verbatim.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
