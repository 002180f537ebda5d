package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Group and referrer feed coupon eligibility checks; the fields
// themselves are populated by account-management flows outside this service.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	group        string
	referredBy   *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, group string, referredBy *uuid.UUID) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		group:        group,
		referredBy:   referredBy,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) Group() string          { return u.group }
func (u *User) ReferredBy() *uuid.UUID { return u.referredBy }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
