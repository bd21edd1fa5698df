package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetVerbose(false)
		Close()
	})
	return &out, &errOut
}

func TestConsoleStreams(t *testing.T) {
	out, errOut := capture(t)
	Info("plain")
	Success("done")
	Error("boom")
	if !strings.Contains(out.String(), "plain") || !strings.Contains(out.String(), "done") {
		t.Fatalf("stdout missing messages: %q", out.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Fatalf("error written to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("stderr missing error: %q", errOut.String())
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	out, errOut := capture(t)
	Debug("hidden")
	if errOut.Len() != 0 || out.Len() != 0 {
		t.Fatalf("debug printed while not verbose")
	}
	SetVerbose(true)
	Debug("shown")
	if !strings.Contains(errOut.String(), "shown") {
		t.Fatalf("debug not printed in verbose mode: %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("debug leaked to stdout: %q", out.String())
	}
}

func TestInit_WritesLogFile(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("to the file")
	Debug("debug to the file")
	Close()
	b, err := os.ReadFile(filepath.Join(dir, "logs", "minigrep.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "to the file") || !strings.Contains(string(b), "debug to the file") {
		t.Fatalf("log file missing messages: %q", string(b))
	}
}
