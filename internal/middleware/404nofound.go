package middleware

import (
	"github.com/marcomarassi/note-keeper-service/pkg/app"
	"github.com/marcomarassi/note-keeper-service/pkg/code"

	"github.com/gin-gonic/gin"
)

func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToResponse(code.ErrorNotFound)
	}
}
