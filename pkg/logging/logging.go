package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

var (
	outputPath                       = "stderr"
	fallbackSink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
)

// Setup builds the global logger. Diagnostics always go to stderr so stdout
// carries only progress lines, including when the configured logger cannot
// be built.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{outputPath}
	cfg.ErrorOutputPaths = []string{outputPath}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = fallback(fallbackSink, cfg.Level.Level()).With(
			zap.String("appName", appName),
			zap.String("appVersion", appVersion))
		zap.ReplaceGlobals(Logger)
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// fallback is a plain console logger used when the configured one fails.
func fallback(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, ws, level))
}
