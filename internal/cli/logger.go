package cli

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/config"
)

// newLogger builds the process logger. The interactive view owns the
// terminal, so without a log file it gets a no-op logger; one-shot export
// logs to stderr.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Interactive() && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Encoding = "console"
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}

	log, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return log.Named("procview"), nil
}
