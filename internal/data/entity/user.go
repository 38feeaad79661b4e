package entity

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether value is a known role name.
func ValidRole(value string) bool {
	switch UserRole(value) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username    string   `db:"username"`
	Email       string   `db:"email"`
	FirstName   string   `db:"first_name"`
	LastName    string   `db:"last_name"`
	Bio         string   `db:"bio"`
	Role        UserRole `db:"role"`
	IsSuperuser bool     `db:"is_superuser"`
	IsStaff     bool     `db:"is_staff"`
	IsActive    bool     `db:"is_active"`
}

// IsAdminUser reports whether the user holds full administrative rights:
// the admin role, or the superuser/staff flag.
func (u *User) IsAdminUser() bool {
	return u.Role == RoleAdmin || u.IsSuperuser || u.IsStaff
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}
