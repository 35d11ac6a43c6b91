// Package logger writes studylit diagnostics to a rotating file next to the database.
// The TUI owns the terminal, so stderr only receives a copy in debug mode.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/studylit/internal/constants"
)

// Logger is nil until Init runs; every helper below is a no-op in that case
var Logger *log.Logger

var path string

type Config struct {
	Debug bool
	// Dir is the studylit data directory; the log file lives in Dir/logs
	Dir string
	// Stderr receives the debug mirror, nil means os.Stderr
	Stderr io.Writer
}

func Init(cfg Config) error {
	logDir := filepath.Join(cfg.Dir, constants.LogDirName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	path = filepath.Join(logDir, constants.LogFileName)

	var w io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxFiles,
		MaxAge:     constants.LogMaxAgeDay,
		Compress:   true,
	}
	if cfg.Debug {
		mirror := cfg.Stderr
		if mirror == nil {
			mirror = os.Stderr
		}
		w = io.MultiWriter(mirror, w)
	}

	Logger = New(w, cfg.Debug)
	return nil
}

// New builds a logger with the studylit prefix. Session and badge events are logged
// at info, so they only show up with debug on.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
}

// Path is the active log file, or "" before Init
func Path() string {
	return path
}

func logAt(level log.Level, msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { logAt(log.InfoLevel, msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { logAt(log.WarnLevel, msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals...) }
