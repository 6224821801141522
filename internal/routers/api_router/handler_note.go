package api_router

import (
	"context"

	"github.com/marcomarassi/note-keeper-service/internal/app"
	"github.com/marcomarassi/note-keeper-service/internal/dto"
	"github.com/marcomarassi/note-keeper-service/internal/form"
	"github.com/marcomarassi/note-keeper-service/internal/middleware"
	"github.com/marcomarassi/note-keeper-service/internal/service"
	"github.com/marcomarassi/note-keeper-service/internal/view"
	pkgapp "github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"
	apperrors "github.com/marcomarassi/note-keeper-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler serves the note list and the edit form submits.
type NoteHandler struct {
	*Handler
}

func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// List renders the note list from the session snapshot. The filter is
// applied in memory, no database round trip happens here.
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid, err := h.ensureSession(c)
	if err != nil {
		h.logError(c.Request.Context(), "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	snapshot, _ := h.App.Sessions.Snapshot(uid)
	model := view.Render(snapshot, params.Filter)

	response.ToResponse(code.Success.WithData(gin.H{
		"view":   model,
		"banner": h.App.Sessions.Banner(uid),
	}))
}

// Submit handles the note form: it creates a new note or, when the
// form has an edit target, updates it. A multipart "image" file part
// is uploaded first and attached.
func (h *NoteHandler) Submit(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteSubmitRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid, err := h.ensureSession(c)
	if err != nil {
		h.logError(c.Request.Context(), "NoteHandler.Submit", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	fileHeader, _ := c.FormFile("image")

	// The form records the image pick and owns validation; a failed
	// validate leaves it editing with the pick intact.
	var editID int64
	var validateErr error
	title, text := params.Title, params.Text
	h.App.Sessions.WithForm(uid, func(f *form.Form) {
		editID = f.EditID()
		if fileHeader != nil {
			f.SelectImage(fileHeader.Filename)
		}
		title, text, validateErr = f.Validate(title, text)
	})
	if validateErr != nil {
		apperrors.ErrorResponse(c, validateErr)
		return
	}

	submit := &service.SubmitParams{
		EditID: editID,
		Title:  title,
		Text:   text,
	}

	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.logError(ctx, "NoteHandler.Submit.OpenUpload", err)
			apperrors.ErrorResponse(c, code.ErrorImageUpload.WithDetails(err.Error()))
			return
		}
		defer file.Close()

		submit.Image = &service.ImageUpload{
			FileName:    fileHeader.Filename,
			File:        file,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	note, err := h.App.NoteService.Submit(ctx, uid, submit)
	if err != nil {
		h.logError(ctx, "NoteHandler.Submit", err)
		h.App.Sessions.SetBanner(uid, bannerMessage(err))
		apperrors.ErrorResponse(c, err)
		return
	}

	// The form goes back to idle and the snapshot is refreshed once.
	h.App.Sessions.WithForm(uid, func(f *form.Form) {
		f.Complete()
	})
	if _, err := h.App.Sessions.Reload(ctx, uid); err != nil {
		h.logError(ctx, "NoteHandler.Submit.Reload", err)
		h.App.Sessions.SetBanner(uid, bannerMessage(err))
	}

	response.ToResponse(code.Success.WithData(view.RenderCard(note)))
}

// Delete removes a note. Without confirm=true nothing is touched and
// the confirmation prompt is returned.
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteDeleteRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid, err := h.ensureSession(c)
	if err != nil {
		h.logError(c.Request.Context(), "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, uid, params.ID, params.Confirm); err != nil {
		if err != code.ErrorNoteDeleteConfirm {
			h.logError(ctx, "NoteHandler.Delete", err)
			h.App.Sessions.SetBanner(uid, bannerMessage(err))
		}
		apperrors.ErrorResponse(c, err)
		return
	}

	// Deleting the note the form was editing abandons that edit.
	h.App.Sessions.WithForm(uid, func(f *form.Form) {
		if f.EditID() == params.ID {
			f.Cancel()
		}
	})

	if _, err := h.App.Sessions.Reload(ctx, uid); err != nil {
		h.logError(ctx, "NoteHandler.Delete.Reload", err)
		h.App.Sessions.SetBanner(uid, bannerMessage(err))
	}

	response.ToResponse(code.Success)
}

func (h *NoteHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
