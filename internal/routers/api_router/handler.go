// Package api_router provides the HTTP API handlers.
package api_router

import (
	"strings"

	"github.com/marcomarassi/note-keeper-service/internal/app"
	"github.com/marcomarassi/note-keeper-service/internal/domain"
	pkgapp "github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// Handler is the base handler every API handler embeds to reach the
// app container.
type Handler struct {
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// ensureSession resolves the authenticated uid and makes sure its
// session exists, reloading the snapshot if the server lost it.
func (h *Handler) ensureSession(c *gin.Context) (int64, error) {
	entity := pkgapp.GetUserEntity(c)
	if entity == nil {
		return 0, code.ErrorNotUserAuthToken
	}

	err := h.App.Sessions.Ensure(c.Request.Context(), &domain.SessionUser{
		UID:   entity.UID,
		Email: entity.Email,
	})
	if err != nil {
		return entity.UID, err
	}

	h.App.Sessions.Touch(entity.UID)
	return entity.UID, nil
}

// bannerMessage flattens an error into the text shown in the session
// banner, e.g. "Errore salvataggio: disk full".
func bannerMessage(err error) string {
	cd, ok := err.(*code.Code)
	if !ok {
		return err.Error()
	}
	msg := cd.Msg()
	if cd.HaveDetails() {
		msg += ": " + strings.Join(cd.Details(), ", ")
	}
	return msg
}
