package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployer  Role = "Employer"
	RoleJobSeeker Role = "Job Seeker"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
