package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type spyNoteRepo struct {
	notes       map[int64]*domain.Note
	nextID      int64
	createCalls int
	updateCalls int
	deleteCalls int
}

func newSpyNoteRepo() *spyNoteRepo {
	return &spyNoteRepo{notes: make(map[int64]*domain.Note), nextID: 1}
}

func (r *spyNoteRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *spyNoteRepo) ListByOwner(ctx context.Context, uid int64) ([]*domain.Note, error) {
	var list []*domain.Note
	for _, n := range r.notes {
		if n.UID == uid {
			cp := *n
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *spyNoteRepo) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	r.createCalls++
	cp := *note
	cp.ID = r.nextID
	cp.UID = uid
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.nextID++
	r.notes[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *spyNoteRepo) Update(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	r.updateCalls++
	existing, ok := r.notes[note.ID]
	if !ok || existing.UID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	existing.Title = note.Title
	existing.Text = note.Text
	existing.ImageURL = note.ImageURL
	existing.UpdatedAt = time.Now()
	cp := *existing
	return &cp, nil
}

func (r *spyNoteRepo) Delete(ctx context.Context, id, uid int64) error {
	r.deleteCalls++
	n, ok := r.notes[id]
	if !ok || n.UID != uid {
		return gorm.ErrRecordNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeStorage struct {
	sendCalls int
	lastKey   string
}

func (s *fakeStorage) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	s.sendCalls++
	s.lastKey = pathKey
	return pathKey, nil
}

func (s *fakeStorage) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	return pathKey, nil
}

func (s *fakeStorage) Delete(pathKey string) error { return nil }

func (s *fakeStorage) PublicURL(pathKey string) string {
	return "https://img.example.com/" + pathKey
}

func newTestNoteService() (NoteService, *spyNoteRepo, *fakeStorage) {
	repo := newSpyNoteRepo()
	store := &fakeStorage{}
	return NewNoteService(repo, store, zap.NewNop()), repo, store
}

func TestSubmitRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
	}{
		{"empty title", "", "testo"},
		{"empty text", "titolo", ""},
		{"both empty", "", ""},
		{"whitespace title", "   ", "testo"},
		{"whitespace text", "titolo", "\t\n"},
		{"whitespace both", "  ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, store := newTestNoteService()

			_, err := svc.Submit(context.Background(), 1, &SubmitParams{
				Title: tt.title,
				Text:  tt.text,
			})

			assert.ErrorIs(t, err, code.ErrorNoteValidation)
			// Validation failed before any write.
			assert.Equal(t, 0, repo.createCalls)
			assert.Equal(t, 0, repo.updateCalls)
			assert.Equal(t, 0, store.sendCalls)
		})
	}
}

func TestSubmitCreates(t *testing.T) {
	svc, repo, _ := newTestNoteService()

	note, err := svc.Submit(context.Background(), 1, &SubmitParams{
		Title: "Lista della Spesa",
		Text:  "pane e latte",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Lista della Spesa", note.Title)
	assert.NotZero(t, note.ID)
	assert.Empty(t, note.ImageURL)
}

func TestSubmitStoresTrimmedFields(t *testing.T) {
	svc, repo, _ := newTestNoteService()

	note, err := svc.Submit(context.Background(), 1, &SubmitParams{
		Title: "  Lista della Spesa ",
		Text:  "\tpane e latte\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lista della Spesa", note.Title)
	assert.Equal(t, "pane e latte", note.Text)

	stored := repo.notes[note.ID]
	assert.Equal(t, "Lista della Spesa", stored.Title)
	assert.Equal(t, "pane e latte", stored.Text)
}

func TestSubmitCreatesWithImage(t *testing.T) {
	svc, repo, store := newTestNoteService()

	note, err := svc.Submit(context.Background(), 1, &SubmitParams{
		Title: "con foto",
		Text:  "testo",
		Image: &ImageUpload{
			FileName:    "foto.png",
			File:        strings.NewReader("fake-bytes"),
			ContentType: "image/png",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.sendCalls)
	assert.Equal(t, 1, repo.createCalls)
	assert.True(t, strings.HasPrefix(store.lastKey, "notes/1/"))
	assert.True(t, strings.HasSuffix(store.lastKey, "_foto.png"))
	assert.Equal(t, "https://img.example.com/"+store.lastKey, note.ImageURL)
}

func TestSubmitUpdates(t *testing.T) {
	svc, repo, _ := newTestNoteService()

	created, err := svc.Submit(context.Background(), 1, &SubmitParams{
		Title: "vecchio", Text: "testo",
	})
	require.NoError(t, err)

	updated, err := svc.Submit(context.Background(), 1, &SubmitParams{
		EditID: created.ID,
		Title:  "nuovo",
		Text:   "testo cambiato",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "nuovo", updated.Title)
}

func TestSubmitUpdateKeepsImageWithoutNewUpload(t *testing.T) {
	svc, _, _ := newTestNoteService()

	created, err := svc.Submit(context.Background(), 1, &SubmitParams{
		Title: "con foto", Text: "testo",
		Image: &ImageUpload{FileName: "a.png", File: strings.NewReader("x"), ContentType: "image/png"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ImageURL)

	updated, err := svc.Submit(context.Background(), 1, &SubmitParams{
		EditID: created.ID,
		Title:  "senza nuova foto",
		Text:   "testo",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}

func TestSubmitUpdateUnknownNote(t *testing.T) {
	svc, _, _ := newTestNoteService()

	_, err := svc.Submit(context.Background(), 1, &SubmitParams{
		EditID: 99,
		Title:  "a",
		Text:   "b",
	})

	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestSubmitUpdateWrongOwner(t *testing.T) {
	svc, _, _ := newTestNoteService()

	created, err := svc.Submit(context.Background(), 1, &SubmitParams{Title: "a", Text: "b"})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), 2, &SubmitParams{
		EditID: created.ID,
		Title:  "x",
		Text:   "y",
	})

	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestDeleteRequiresConfirm(t *testing.T) {
	svc, repo, _ := newTestNoteService()

	created, err := svc.Submit(context.Background(), 1, &SubmitParams{Title: "a", Text: "b"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 1, created.ID, false)

	assert.ErrorIs(t, err, code.ErrorNoteDeleteConfirm)
	// The refusal never reaches the repository.
	assert.Equal(t, 0, repo.deleteCalls)

	_, getErr := svc.List(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Len(t, repo.notes, 1)
}

func TestDeleteConfirmed(t *testing.T) {
	svc, repo, _ := newTestNoteService()

	created, err := svc.Submit(context.Background(), 1, &SubmitParams{Title: "a", Text: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, created.ID, true))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Empty(t, repo.notes)
}

func TestDeleteUnknownNote(t *testing.T) {
	svc, _, _ := newTestNoteService()

	err := svc.Delete(context.Background(), 1, 42, true)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}
