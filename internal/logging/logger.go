package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    *zap.Logger
	sessionID = uuid.NewString()
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "EDUPORTAL_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to outputPath.
// If level is empty, it checks EDUPORTAL_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// An empty outputPath writes to stderr; the TUI always passes a file because
// it owns the terminal.
func Initialize(level, outputPath string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	if outputPath == "" {
		outputPath = "stderr"
	} else if outputPath != "stdout" && outputPath != "stderr" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built.With(zap.String("session", sessionID))

	return nil
}

// InitializeFromEnv initializes the logger from the EDUPORTAL_LOG_LEVEL
// environment variable, writing to stderr.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SessionID returns the id attached to every entry of this run.
func SessionID() string {
	return sessionID
}

// NewMountID mints an id for one mounted view instance.
func NewMountID() string {
	return uuid.NewString()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogRoute logs a navigation between two paths
func LogRoute(from, to string) {
	Info("Route changed",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogMount logs a view being mounted with fresh state
func LogMount(view, mountID string) {
	Debug("View mounted",
		zap.String("view", view),
		zap.String("mount_id", mountID),
	)
}

// LogUnmount logs a view being torn down
func LogUnmount(view, mountID string) {
	Debug("View unmounted",
		zap.String("view", view),
		zap.String("mount_id", mountID),
	)
}

// LogTransition logs a state transition of a view component
func LogTransition(component, key, detail string) {
	Debug("State transition",
		zap.String("component", component),
		zap.String("key", key),
		zap.String("detail", detail),
	)
}

// LogPlayer logs an embedded player lifecycle event
func LogPlayer(event, sourceID string) {
	Info("Player event",
		zap.String("event", event),
		zap.String("source_id", sourceID),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
