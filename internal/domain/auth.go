package domain

// PrincipalKind differentiates staff vs customer sessions.
type PrincipalKind string

const (
	PrincipalStaff    PrincipalKind = "staff"
	PrincipalCustomer PrincipalKind = "customer"
)

// Role is carried in access tokens and checked against the expected principal kind.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// Kind reports which principal kind a role belongs to. Unknown roles report "".
func (r Role) Kind() PrincipalKind {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return PrincipalStaff
	case RoleCustomer:
		return PrincipalCustomer
	default:
		return ""
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r.Kind() != ""
}
