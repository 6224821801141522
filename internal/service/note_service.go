package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/pkg/code"
	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"
	"github.com/marcomarassi/note-keeper-service/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageUpload is a pending attachment from a multipart submit.
type ImageUpload struct {
	FileName    string
	File        io.Reader
	ContentType string
}

// SubmitParams describes one form submit. EditID zero means create.
type SubmitParams struct {
	EditID int64
	Title  string
	Text   string
	Image  *ImageUpload
}

// NoteService owns note mutations and the note list. List doubles as
// the loader the session controller uses to build snapshots.
type NoteService interface {
	// List returns every note of uid, most recently updated first.
	List(ctx context.Context, uid int64) ([]*domain.Note, error)

	// Submit validates the form fields, uploads the image if one was
	// selected and creates or updates the note. Validation failures
	// happen before any storage or database call.
	Submit(ctx context.Context, uid int64, params *SubmitParams) (*domain.Note, error)

	// Delete removes the note. Without confirm it refuses and touches
	// nothing.
	Delete(ctx context.Context, uid, id int64, confirm bool) error
}

type noteService struct {
	noteRepo domain.NoteRepository
	store    storage.Storager
	logger   *zap.Logger
}

func NewNoteService(noteRepo domain.NoteRepository, store storage.Storager, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		store:    store,
		logger:   logger,
	}
}

func (s *noteService) List(ctx context.Context, uid int64) ([]*domain.Note, error) {
	list, err := s.noteRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, code.ErrorNoteLoad.WithDetails(err.Error())
	}
	return list, nil
}

// uploadImage stores the attachment under notes/{uid}/{ms}_{name} and
// returns its public URL.
func (s *noteService) uploadImage(uid int64, img *ImageUpload) (string, error) {
	name := fileurl.GetFileNameOrRandom(img.FileName)
	pathKey := fmt.Sprintf("notes/%d/%d_%s", uid, time.Now().UnixMilli(), name)

	if _, err := s.store.SendFile(pathKey, img.File, img.ContentType, time.Now()); err != nil {
		return "", err
	}
	return s.store.PublicURL(pathKey), nil
}

func (s *noteService) Submit(ctx context.Context, uid int64, params *SubmitParams) (*domain.Note, error) {
	// Whitespace-only fields are as empty as missing ones; the trimmed
	// values are what gets stored.
	params.Title = strings.TrimSpace(params.Title)
	params.Text = strings.TrimSpace(params.Text)
	if params.Title == "" || params.Text == "" {
		return nil, code.ErrorNoteValidation
	}

	imageURL := ""
	if params.Image != nil {
		url, err := s.uploadImage(uid, params.Image)
		if err != nil {
			s.logger.Error("image upload failed",
				zap.Int64("uid", uid), zap.Error(err))
			return nil, code.ErrorImageUpload.WithDetails(err.Error())
		}
		imageURL = url
	}

	if params.EditID == 0 {
		note, err := s.noteRepo.Create(ctx, &domain.Note{
			Title:    params.Title,
			Text:     params.Text,
			ImageURL: imageURL,
		}, uid)
		if err != nil {
			return nil, code.ErrorNoteSave.WithDetails(err.Error())
		}
		s.logger.Info("note created",
			zap.Int64("uid", uid), zap.Int64("id", note.ID))
		return note, nil
	}

	existing, err := s.noteRepo.GetByID(ctx, params.EditID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorNoteSave.WithDetails(err.Error())
	}

	// A submit without a new image keeps the existing attachment.
	if imageURL == "" {
		imageURL = existing.ImageURL
	}

	note, err := s.noteRepo.Update(ctx, &domain.Note{
		ID:       params.EditID,
		Title:    params.Title,
		Text:     params.Text,
		ImageURL: imageURL,
	}, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorNoteSave.WithDetails(err.Error())
	}

	s.logger.Info("note updated",
		zap.Int64("uid", uid), zap.Int64("id", note.ID))
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, uid, id int64, confirm bool) error {
	if !confirm {
		return code.ErrorNoteDeleteConfirm
	}

	err := s.noteRepo.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorNoteNotFound
		}
		return code.ErrorNoteDelete.WithDetails(err.Error())
	}

	s.logger.Info("note deleted",
		zap.Int64("uid", uid), zap.Int64("id", id))
	return nil
}

var _ NoteService = (*noteService)(nil)
