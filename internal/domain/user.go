package domain

import "time"

// RootUsername is the bootstrap administrator account. It cannot be deleted.
const RootUsername = "root"

// User is the domain model for operator credentials. The username is the
// stable identity key; tokens are issued against it.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
