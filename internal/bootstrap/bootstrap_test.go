package bootstrap

import (
	"testing"
	"time"

	"github.com/GregMSThompson/bank-closures/internal/config"
)

func TestRun(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug", HTTPTimeout: 3 * time.Second}

	bs, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer bs.Close()

	if bs.Log == nil {
		t.Fatal("Log = nil")
	}
	if bs.HTTPClient == nil || bs.HTTPClient.Timeout != 3*time.Second {
		t.Fatalf("HTTPClient = %+v, want 3s timeout", bs.HTTPClient)
	}
	if bs.Firestore != nil || bs.VertexAdapter != nil {
		t.Fatal("Run should not connect refresh services")
	}
}
