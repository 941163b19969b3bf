package event

import (
	"time"

	"github.com/google/uuid"
)

// KindUserCreated identifies the UserCreated event for dispatch routing.
const KindUserCreated = "user.created"

// UserCreated records that a user has been persisted.
// It is immutable once constructed; OccurredAt is fixed at construction
// time, not at dispatch time.
type UserCreated struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewUserCreated builds the event from the persisted identity.
func NewUserCreated(userID, username, email string) UserCreated {
	return UserCreated{
		EventID:    uuid.NewString(),
		UserID:     userID,
		Username:   username,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

// Kind implements Event.
func (UserCreated) Kind() string { return KindUserCreated }
