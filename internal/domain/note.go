// Package domain holds the business entities and repository contracts.
package domain

import (
	"context"
	"time"
)

// Note is a single note owned by a user. ImageURL is empty when the
// note has no attachment.
type Note struct {
	ID        int64
	UID       int64
	Title     string
	Text      string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteRepository persists notes. Every operation is scoped to the
// owning uid so one user can never touch another user's rows.
type NoteRepository interface {
	// GetByID returns the note or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id, uid int64) (*Note, error)
	// ListByOwner returns all notes of uid, most recently updated first.
	ListByOwner(ctx context.Context, uid int64) ([]*Note, error)
	// Create inserts the note and stamps CreatedAt and UpdatedAt.
	Create(ctx context.Context, note *Note, uid int64) (*Note, error)
	// Update rewrites title, text and image and stamps UpdatedAt.
	Update(ctx context.Context, note *Note, uid int64) (*Note, error)
	Delete(ctx context.Context, id, uid int64) error
}
