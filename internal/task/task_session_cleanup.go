package task

import (
	"context"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/app"

	"go.uber.org/zap"
)

// SessionCleanupTask evicts sessions that have been idle longer than
// the configured timeout.
type SessionCleanupTask struct {
	app    *app.App
	logger *zap.Logger
}

func NewSessionCleanupTask(a *app.App, logger *zap.Logger) *SessionCleanupTask {
	return &SessionCleanupTask{app: a, logger: logger}
}

func (t *SessionCleanupTask) Name() string {
	return "SessionCleanupTask"
}

func (t *SessionCleanupTask) LoopInterval() time.Duration {
	return 10 * time.Minute
}

func (t *SessionCleanupTask) IsStartupRun() bool {
	return false
}

func (t *SessionCleanupTask) Run(ctx context.Context) error {
	maxIdle := t.app.Config().GetSessionIdleTimeout()
	removed := t.app.Sessions.CleanIdle(maxIdle)
	if removed > 0 {
		t.logger.Info("idle sessions removed",
			zap.Int("count", removed),
			zap.Int("remaining", t.app.Sessions.Count()))
	}
	return nil
}
