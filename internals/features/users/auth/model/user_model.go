// file: internals/features/users/auth/model/user_model.go
package model

// User is the login identity of the portal. The demo seed carries a
// single student account; PasswordHash is bcrypt.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"-"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
