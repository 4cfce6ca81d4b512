package domain

// Role is the caller role carried in an access token.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleInstitution Role = "institution"
	RoleUser        Role = "user"
)

func (r Role) String() string { return string(r) }

// IsValid returns true if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstitution, RoleUser:
		return true
	}
	return false
}

// CanReview reports whether the role may moderate generated content.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleInstitution
}
