package api_router

import (
	"context"

	"github.com/marcomarassi/note-keeper-service/internal/app"
	"github.com/marcomarassi/note-keeper-service/internal/dto"
	"github.com/marcomarassi/note-keeper-service/internal/form"
	"github.com/marcomarassi/note-keeper-service/internal/middleware"
	pkgapp "github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"
	apperrors "github.com/marcomarassi/note-keeper-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler drives the edit form state machine.
type FormHandler struct {
	*Handler
}

func NewFormHandler(a *app.App) *FormHandler {
	return &FormHandler{Handler: NewHandler(a)}
}

// Edit points the form at an existing note and returns its raw fields
// for prefilling. The note must be in the current snapshot.
func (h *FormHandler) Edit(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteEditRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid, err := h.ensureSession(c)
	if err != nil {
		h.logError(c.Request.Context(), "FormHandler.Edit", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	note, ok := h.App.Sessions.SnapshotNote(uid, params.ID)
	if !ok {
		apperrors.ErrorResponse(c, code.ErrorNoteNotFound)
		return
	}

	h.App.Sessions.WithForm(uid, func(f *form.Form) {
		f.BeginEdit(params.ID)
	})

	// Raw values, not the escaped view, so the client can put them
	// back into input fields.
	response.ToResponse(code.Success.WithData(dto.NoteResponse{
		ID:       note.ID,
		Title:    note.Title,
		Text:     note.Text,
		ImageURL: note.ImageURL,
	}))
}

// Cancel abandons the edit and resets the form to a new note.
func (h *FormHandler) Cancel(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid, err := h.ensureSession(c)
	if err != nil {
		h.logError(c.Request.Context(), "FormHandler.Cancel", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	h.App.Sessions.WithForm(uid, func(f *form.Form) {
		f.Cancel()
	})

	response.ToResponse(code.Success)
}

func (h *FormHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
