package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qnkhuat/hotseat/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "warn", Format: "json"}, &buf)
	log.Info("dropped")
	log.Warn("kept", zap.String("square", "e4"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines; want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", lines[0], err)
	}
	if entry["msg"] != "kept" || entry["square"] != "e4" || entry["level"] != "warn" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	New(config.Log{Level: "info", Format: "console"}, &buf).Info("reset")
	if got := buf.String(); !strings.Contains(got, " | INFO | reset") {
		t.Errorf("console line = %q", got)
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	closeLog, err := Init(config.Log{Level: "info", File: path, Format: "console"}, "client")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	L().Info("session_start")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "client | session_start") {
		t.Errorf("log file = %q", data)
	}
}

func TestInitWithoutFile(t *testing.T) {
	closeLog, err := Init(config.Log{Level: "info"}, "client")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeLog()
	L().Info("nowhere")
}
