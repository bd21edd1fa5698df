package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	fileLog *logrus.Logger
	sink    *lumberjack.Logger
	verbose bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Init starts mirroring messages into <dir>/logs/minigrep.log.
func Init(dir string) error {
	p := filepath.Join(dir, "logs")
	if err := os.MkdirAll(p, 0o755); err != nil {
		return err
	}
	Close()
	sink = &lumberjack.Logger{
		Filename:   filepath.Join(p, "minigrep.log"),
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
	fileLog = logrus.New()
	fileLog.SetOutput(sink)
	fileLog.SetLevel(logrus.DebugLevel)
	fileLog.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return nil
}

func Close() {
	if sink != nil {
		_ = sink.Close()
	}
	sink = nil
	fileLog = nil
}

// SetOutput redirects console output; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func color(code, s string) string { return "\x1b[" + code + "m" + s + "\x1b[0m" }

func Info(msg string) {
	_, _ = fmt.Fprintln(stdout, msg)
	if fileLog != nil {
		fileLog.Info(msg)
	}
}

func Success(msg string) {
	_, _ = fmt.Fprintln(stdout, color("32", msg))
	if fileLog != nil {
		fileLog.Info(msg)
	}
}

func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, color("31", msg))
	if fileLog != nil {
		fileLog.Error(msg)
	}
}

// SetVerbose toggles debug output on stderr.
func SetVerbose(v bool) { verbose = v }

// Debug always reaches the log file; the console sees it only in verbose mode.
// It writes to stderr so that stdout carries nothing but results.
func Debug(msg string) {
	if fileLog != nil {
		fileLog.Debug(msg)
	}
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(stderr, color("90", msg))
}
