package model

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user name already taken")

	// Login never says whether the user or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid user name or password")
)
