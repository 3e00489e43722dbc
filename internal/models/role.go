package models

// Role is the trust level of a staff user. The three roles form a strict
// hierarchy: staff < admin < owner.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// Rank returns the position of the role in the hierarchy, -1 for unknown
// roles so they never pass a minimum-rank check.
func (r Role) Rank() int {
	switch r {
	case RoleStaff:
		return 0
	case RoleAdmin:
		return 1
	case RoleOwner:
		return 2
	default:
		return -1
	}
}

func (r Role) Valid() bool {
	return r.Rank() >= 0
}

func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}
