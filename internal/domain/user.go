package domain

import (
	"context"
	"time"
)

type User struct {
	UID       int64
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionUser is the authenticated identity carried by session state
// events and tokens.
type SessionUser struct {
	UID   int64
	Email string
}

type UserRepository interface {
	// GetByEmail returns the user or gorm.ErrRecordNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUID(ctx context.Context, uid int64) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
}
