package domain

import "time"

// Role IDs match the seeded reference rows; they never change at runtime.
const (
	RoleIDBuyer  = 1
	RoleIDSeller = 2

	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Role is immutable reference data describing what a user may do.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User models an account in the vending-machine backend.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"role_id"`
	Role         *Role     `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleName returns the joined role name, or "" when the role was not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserPatch carries the optional fields of a profile update. Nil means
// "leave unchanged". Password is plaintext; hashing happens in the service
// before anything is persisted.
type UserPatch struct {
	Email    *string
	Password *string
	RoleID   *int
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Password == nil && p.RoleID == nil
}
