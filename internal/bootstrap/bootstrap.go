package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"cloud.google.com/go/firestore"

	vertexclient "github.com/GregMSThompson/bank-closures/internal/client/vertex"
	"github.com/GregMSThompson/bank-closures/internal/config"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	HTTPClient    *http.Client
	Firestore     *firestore.Client
	VertexAdapter *vertexclient.Adapter
}

// Run sets up what every binary needs: the logger and an outbound HTTP client.
func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	slog.SetDefault(bs.Log)
	bs.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}

	return bs, nil
}

// RunRefresh additionally connects the services used by the refresh pipeline.
// Firestore is only opened when it backs the extraction store.
func RunRefresh(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()

	bs, err := Run(cfg)
	if err != nil {
		return bs, err
	}

	if cfg.ExtractionBackend == config.ExtractionBackendFirestore {
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
	}
	bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Error("firestore close failed", "error", err)
		}
	}
}
