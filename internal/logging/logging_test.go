package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "ringmenu.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("nav.transition", map[string]interface{}{"action": "right"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}
}

func TestTraceWritesJSONWithRunID(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("nav.transition", map[string]interface{}{"action": "right"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Run     string                 `json:"run"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode entry %q: %v", data, err)
	}
	if entry.Event != "nav.transition" {
		t.Fatalf("expected event nav.transition, got %q", entry.Event)
	}
	if entry.Run == "" || entry.Run != runID {
		t.Fatalf("expected run id %q, got %q", runID, entry.Run)
	}
	if entry.Payload["action"] != "right" {
		t.Fatalf("expected payload action right, got %v", entry.Payload["action"])
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", data)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
