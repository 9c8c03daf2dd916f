package logging

import (
	"go.uber.org/zap"
)

// L is the process-wide sugared logger. Init must be called before use; the
// default is a no-op logger so library callers stay quiet.
var L = zap.NewNop().Sugar()

// Init configures the logger. Verbose enables debug-level console output;
// otherwise only warnings and above are emitted.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return
	}
	L = logger.Sugar()
}
