package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(&Config{
		Type:        "sqlite",
		Path:        filepath.Join(t.TempDir(), "test.db"),
		TablePrefix: "nk_",
	}, "")
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return New(db)
}

func TestNoteCreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "prima", Text: "testo"}, 1)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "prima", got.Title)

	_, err = repo.GetByID(ctx, created.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteListOrderedByUpdatedAt(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Note{Title: "prima", Text: "a"}, 1)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Create(ctx, &domain.Note{Title: "seconda", Text: "b"}, 1)
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	// Touching the older note moves it to the front.
	time.Sleep(5 * time.Millisecond)
	first.Title = "prima rivista"
	_, err = repo.Update(ctx, first, 1)
	require.NoError(t, err)

	list, err = repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestNoteListScopedToOwner(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Note{Title: "mia", Text: "a"}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Note{Title: "altrui", Text: "b"}, 2)
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mia", list[0].Title)

	list, err = repo.ListByOwner(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoteUpdateBumpsOnlyUpdatedAt(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "a", Text: "b"}, 1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	created.Title = "aggiornata"
	created.ImageURL = "https://img.example.com/notes/1/1_a.png"
	updated, err := repo.Update(ctx, created, 1)
	require.NoError(t, err)

	assert.Equal(t, "aggiornata", updated.Title)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestNoteUpdateWrongOwner(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "a", Text: "b"}, 1)
	require.NoError(t, err)

	created.Title = "furto"
	_, err = repo.Update(ctx, created, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestNoteDelete(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "a", Text: "b"}, 1)
	require.NoError(t, err)

	err = repo.Delete(ctx, created.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID, 1))

	err = repo.Delete(ctx, created.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserCreateAndLookup(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Email:    "mario@example.com",
		Password: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UID)

	byEmail, err := repo.GetByEmail(ctx, "mario@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UID, byEmail.UID)

	byUID, err := repo.GetByUID(ctx, created.UID)
	require.NoError(t, err)
	assert.Equal(t, "mario@example.com", byUID.Email)

	_, err = repo.GetByEmail(ctx, "nessuno@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserEmailUnique(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Email: "mario@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "mario@example.com", Password: "y"})
	assert.Error(t, err)
}
