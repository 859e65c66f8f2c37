package entity

// User represents an authenticated simulator account.
// Password holds the bcrypt hash; it is never serialized.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Role constants
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// CanEdit reports whether this user may modify chart fields.
func (u *User) CanEdit() bool {
	return u != nil && u.Role == RoleAdmin
}
