package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/GregMSThompson/bank-closures/internal/bootstrap"
	"github.com/GregMSThompson/bank-closures/internal/config"
	"github.com/GregMSThompson/bank-closures/internal/services"
	"github.com/GregMSThompson/bank-closures/internal/store"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	sstore := store.NewStaticStore(cfg.StaticDir)

	// services
	mserv := services.NewMetadataService(sstore)

	ctx := logger.ToContext(context.Background(), bs.Log.With("dir", cfg.StaticDir))
	_, err = mserv.Stamp(ctx)
	exitOnError("metadata stamp failed", err, bs.Log)
}
