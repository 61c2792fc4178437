package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Expected default address :23234, got %q", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("Expected 30m idle timeout, got %v", cfg.IdleTimeout)
	}
	if cfg.Engine.Rows != 30 || cfg.Engine.Cols != 40 {
		t.Errorf("Expected 30x40 board, got %dx%d", cfg.Engine.Rows, cfg.Engine.Cols)
	}
}

func TestSSHServerStopsOnCancel(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil, log.New(testWriter{t}))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not stop after cancel")
	}
}

// testWriter sends server logs to the test log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
