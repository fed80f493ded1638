package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleEditor UserRole = "editor"
	UserRoleAdmin  UserRole = "admin"
)

// User is a back-office account: the editorial team, not site readers.
type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
