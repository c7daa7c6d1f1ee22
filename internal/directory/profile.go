package directory

// Role classifies a profile. It is stored on the profile document and is the
// only source of truth for authorization; it is never derived from the email.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile is the application-owned record of a user, separate from the
// provider's credential. ID is the provider-assigned identity; Email and Role
// are immutable after creation.
type Profile struct {
	ID      string
	Name    string
	Surname string
	Age     int
	Email   string
	Role    Role
}

// IsAdmin reports whether the profile grants catalog administration.
func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }

// RegisterInput carries the fields collected during registration. The
// password travels separately as a byte slice so it can be wiped.
type RegisterInput struct {
	Email   string `validate:"required,email"`
	Name    string `validate:"required"`
	Surname string `validate:"required"`
	Age     int    `validate:"gte=0,lte=150"`
}

// ProfileUpdate carries the only mutable profile fields.
type ProfileUpdate struct {
	Name    string `validate:"required"`
	Surname string `validate:"required"`
	Age     int    `validate:"gte=0,lte=150"`
}
