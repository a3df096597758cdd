package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/limbo/flowmotion/pkg/cleanup"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging installs the default slog logger. With a log file, records
// also go to a rotating file that is closed on cleanup.
func setupLogging(debug bool, logFile string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	if logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cleanup.Register(&cleanup.Job{Name: "log file", F: fileWriter.Close})
		w = io.MultiWriter(os.Stderr, fileWriter)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
