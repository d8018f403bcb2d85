package app

import (
	"testing"

	"github.com/goalmaven/goal-maven/internal/config"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
)

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:           ":0",
		DBURL:              "memory",
		CORSAllowedOrigins: []string{"*"},
		BcryptCost:         4,
	}

	srv, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if srv.Handler == nil {
		t.Fatalf("expected handler to be set")
	}
}
