package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GregMSThompson/bank-closures/internal/bootstrap"
	wpdiscuzclient "github.com/GregMSThompson/bank-closures/internal/client/wpdiscuz"
	"github.com/GregMSThompson/bank-closures/internal/config"
	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/internal/services"
	"github.com/GregMSThompson/bank-closures/internal/store"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type extractionStore interface {
	List(ctx context.Context) ([]models.Extraction, error)
	Save(ctx context.Context, ext models.Extraction) error
}

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.RunRefresh(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// clients
	wpd, err := wpdiscuzclient.NewAdapter(bs.HTTPClient, cfg.CommentsEndpoint, cfg.CommentsPostID, cfg.ScrapeInterval)
	exitOnError("comment client init failed", err, bs.Log)

	// stores
	cstore := store.NewCommentStore(cfg.CommentsPath)
	sstore := store.NewStaticStore(cfg.StaticDir)
	var estore extractionStore = store.NewExtractionFileStore(cfg.ExtractionsPath)
	if cfg.ExtractionBackend == config.ExtractionBackendFirestore {
		estore = store.NewExtractionStore(bs.Firestore)
	}

	// services
	scserv := services.NewScrapeService(wpd, cstore)
	exserv := services.NewExtractService(bs.VertexAdapter, cstore, estore)
	agserv := services.NewAggregateService(estore, sstore)
	mserv := services.NewMetadataService(sstore)
	rserv := services.NewRefreshService(scserv, exserv, agserv, mserv, cfg.ForceStamp)

	ctx = logger.ToContext(ctx, bs.Log.With("backend", string(cfg.ExtractionBackend)))
	res, err := rserv.Run(ctx)
	exitOnError("refresh failed", err, bs.Log)

	bs.Log.Info("refresh complete",
		"new_comments", res.NewComments,
		"new_extractions", res.NewExtractions,
		"banks", res.Banks,
		"changed", res.Changed,
		"stamped", res.Stamped)
}
