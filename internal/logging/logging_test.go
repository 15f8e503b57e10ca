package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantErr   bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantInfo: true},
		{level: " WARN "},
		{level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line", "score", 2048)

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug output = %v, want %v: %q", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info output = %v, want %v: %q", got, tt.wantInfo, out)
			}
			if tt.wantInfo && (!strings.Contains(out, Prefix) || !strings.Contains(out, "score=2048")) {
				t.Errorf("missing prefix or fields: %q", out)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "t2048.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger, err := New(f, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("new best score", "best", 512)
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "new best score") {
		t.Errorf("log file content = %q", data)
	}
}
