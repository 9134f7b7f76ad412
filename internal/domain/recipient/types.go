package recipient

type Role string

const (
	// RoleStaff receives the individual digest of their own tasks.
	RoleStaff Role = "staff"
	// RoleManager receives the aggregate digest: own tasks plus the whole firm.
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager:
		return true
	default:
		return false
	}
}

func (r Role) WantsAggregate() bool {
	return r == RoleManager
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
