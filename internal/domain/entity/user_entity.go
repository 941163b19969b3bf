package entity

import (
	"time"
)

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

// User is the aggregate root for the user domain.
// All consistency-bearing mutations go through the domain or application
// services; the repository never constructs business state on its own.
//
// Username is immutable after creation.
type User struct {
	ID        string
	Username  string
	Email     string
	Phone     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEnabled reports whether the account is active.
func (u *User) IsEnabled() bool {
	return u.Status == StatusEnabled
}

// Enable activates the account.
func (u *User) Enable() {
	u.Status = StatusEnabled
}

// Disable deactivates the account.
func (u *User) Disable() {
	u.Status = StatusDisabled
}
