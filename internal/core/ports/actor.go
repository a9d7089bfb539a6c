package ports

// Actor identifies the authenticated caller of a service operation. Services
// re-check the role on every mutating call; the presentation layer is not
// trusted to enforce gating on its own.
type Actor struct {
	Username string
	Role     string
}
