package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ioutils "github.com/yeager/lugn/internal/io"
)

// FileName is the log file name inside the state directory.
const FileName = "lugn.log"

// DefaultPath returns the standard log file location,
// $XDG_STATE_HOME/lugn/lugn.log.
func DefaultPath() string {
	return filepath.Join(ioutils.UserStateDir(), FileName)
}

// New builds a logger writing JSON entries to the file at path,
// creating the parent directory when needed. verbose lowers the level
// from Info to Debug.
//
// Nothing is ever written to stdout or stderr; the interactive UI
// owns the terminal.
func New(path string, verbose bool) (*zap.Logger, error) {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
