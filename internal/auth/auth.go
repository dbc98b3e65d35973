// Package auth holds the user accounts that gate the interactive session.
// Destructive commands are reserved for the admin role.
package auth

import (
	"errors"

	"flightbook/config"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type User struct {
	Username string
	Password string
	Role     string
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func FromConfig(users []config.UserConfig) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, User{Username: u.Username, Password: u.Password, Role: u.Role})
	}
	return out
}

func Authenticate(users []User, username, password string) (*User, error) {
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
