package dao

import (
	"context"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/internal/model"
)

// noteRepository implements domain.NoteRepository.
type noteRepository struct {
	dao *Dao
}

func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Text:      m.Text,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	return &model.Note{
		ID:        note.ID,
		UID:       note.UID,
		Title:     note.Title,
		Text:      note.Text,
		ImageURL:  note.ImageURL,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// GetByID returns a note scoped to its owner.
func (r *noteRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByOwner returns every note of uid, most recently updated first.
func (r *noteRepository) ListByOwner(ctx context.Context, uid int64) ([]*domain.Note, error) {
	var mList []*model.Note
	err := r.dao.Db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("updated_at DESC").
		Find(&mList).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Note, 0, len(mList))
	for _, m := range mList {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// Create inserts the note. Timestamps are stamped server side so
// clients can never backdate an entry.
func (r *noteRepository) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	m := r.toModel(note)
	m.UID = uid
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update rewrites the mutable columns and bumps updated_at. CreatedAt
// is left untouched.
func (r *noteRepository) Update(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	now := time.Now()

	tx := r.dao.Db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND uid = ?", note.ID, uid).
		Updates(map[string]any{
			"title":      note.Title,
			"text":       note.Text,
			"image_url":  note.ImageURL,
			"updated_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gormNotFound()
	}

	return r.GetByID(ctx, note.ID, uid)
}

// Delete removes the note row. Deleting a missing or foreign row is
// reported as not found.
func (r *noteRepository) Delete(ctx context.Context, id, uid int64) error {
	tx := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Note{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}

var _ domain.NoteRepository = (*noteRepository)(nil)
