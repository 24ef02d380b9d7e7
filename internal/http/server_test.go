package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/devconnector/auth-api/internal/logging"
)

func TestServer_StartAndShutdown(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NewServeMux(), time.Second, time.Second, logging.NewLogger(true))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// Give the listener a moment to come up before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Start() returned error after graceful shutdown: %v", err)
	}
}
