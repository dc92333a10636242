package users

import "time"

// User is an admin account record. PasswordHash carries the modular
// $a2id$... string and must never leave the package unredacted; the JSON
// tag matches the persisted collection format.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is a User with the password hash stripped. This is the only
// shape that crosses the service boundary.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Redacted returns the public view of the user.
func (u *User) Redacted() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
