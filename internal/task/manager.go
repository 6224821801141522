package task

import (
	"github.com/marcomarassi/note-keeper-service/internal/app"
	"github.com/marcomarassi/note-keeper-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager builds the task set from the app container.
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

func NewManager(a *app.App, logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		app:       a,
	}
}

// RegisterTasks adds every maintenance job.
func (m *Manager) RegisterTasks() error {
	m.scheduler.AddTask(NewSessionCleanupTask(m.app, m.logger))
	m.scheduler.AddTask(NewTempCleanupTask(m.app.Config().App.TempPath, m.logger))
	return nil
}

func (m *Manager) Start() {
	m.scheduler.Start()
}
