package task

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// TempCleanupTask empties the temp upload directory once at startup.
type TempCleanupTask struct {
	tempPath string
	logger   *zap.Logger
}

func NewTempCleanupTask(tempPath string, logger *zap.Logger) *TempCleanupTask {
	if tempPath == "" {
		tempPath = "storage/temp"
	}
	return &TempCleanupTask{tempPath: tempPath, logger: logger}
}

func (t *TempCleanupTask) Name() string {
	return "TempCleanupTask"
}

func (t *TempCleanupTask) LoopInterval() time.Duration {
	return 0
}

func (t *TempCleanupTask) IsStartupRun() bool {
	return true
}

func (t *TempCleanupTask) Run(ctx context.Context) error {
	if _, err := os.Stat(t.tempPath); os.IsNotExist(err) {
		return os.MkdirAll(t.tempPath, 0755)
	}

	if err := os.RemoveAll(t.tempPath); err != nil {
		t.logger.Error("temp directory cleanup failed",
			zap.String("path", t.tempPath), zap.Error(err))
		return err
	}
	if err := os.MkdirAll(t.tempPath, 0755); err != nil {
		t.logger.Error("temp directory recreate failed",
			zap.String("path", t.tempPath), zap.Error(err))
		return err
	}

	t.logger.Info("temp directory cleaned", zap.String("path", t.tempPath))
	return nil
}
