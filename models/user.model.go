package models

import "time"

// User is the authenticated account as returned by the /me endpoint. Held in
// memory only; the session manager is the sole owner of the live instance.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"` // USER, ADMIN
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "ADMIN"
}
