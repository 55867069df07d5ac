package virtual

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type logLevel int

const (
	logOff logLevel = iota
	logInterceptOnly
	logDebug
)

var (
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	level  = parseLogLevel()
)

func parseLogLevel() logLevel {
	if os.Getenv("PLANSFS_DEBUG") != "" {
		return logDebug
	}
	level := strings.ToLower(strings.TrimSpace(os.Getenv("PLANSFS_LOG_LEVEL")))
	switch level {
	case "", "off", "none", "0":
		return logOff
	case "intercept", "info", "1":
		return logInterceptOnly
	case "debug", "verbose", "2":
		return logDebug
	default:
		return logOff
	}
}

func debugf(format string, args ...interface{}) {
	if level < logDebug {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

func logIntercept(op string, path string, key string) {
	if level < logInterceptOnly {
		return
	}
	logger.Info(
		"intercept",
		"op", op,
		"path", path,
		"key", key,
	)
}
