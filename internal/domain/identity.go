package domain

// Role is the account type a user registers with.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleEmployer
}

// Identity is the verified caller of an operation, established by the
// authentication middleware from a signed token.
type Identity struct {
	ID   string
	Role Role
}

// HasRole reports whether the identity holds one of the allowed roles.
func HasRole(identity Identity, allowed ...Role) bool {
	for _, r := range allowed {
		if identity.Role == r {
			return true
		}
	}
	return false
}

// IsOwner reports whether the identity is the owner recorded on a resource.
func IsOwner(identity Identity, ownerID string) bool {
	return identity.ID != "" && identity.ID == ownerID
}
