// Package routers assembles the gin engine.
package routers

import (
	"net/http"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/app"
	"github.com/marcomarassi/note-keeper-service/internal/middleware"
	"github.com/marcomarassi/note-keeper-service/internal/routers/api_router"
	"github.com/marcomarassi/note-keeper-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth endpoints share a token bucket so credential stuffing gets
// throttled early.
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		if cfg.Tracer.Enabled {
			api.Use(middleware.TraceMiddleware(cfg.Tracer.Header))
		}
		api.Use(middleware.Metrics())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		formHandler := api_router.NewFormHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)

		api.GET("/version", versionHandler.ServerVersion)

		auth := middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)

		api.Use(auth).POST("/user/logout", userHandler.Logout)
		api.Use(auth).GET("/user/info", userHandler.UserInfo)

		api.Use(auth).GET("/notes", noteHandler.List)
		api.Use(auth).POST("/note", noteHandler.Submit)
		api.Use(auth).DELETE("/note", noteHandler.Delete)

		api.Use(auth).POST("/form/edit", formHandler.Edit)
		api.Use(auth).POST("/form/cancel", formHandler.Cancel)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve stored images when the local backend runs with httpfs on.
	if cfg.Storage.Type == "localfs" && cfg.Storage.HttpfsIsEnable {
		r.StaticFS("/uploads", http.Dir(cfg.Storage.SavePath))
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
