package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/bank-closures/internal/bootstrap"
	siteclient "github.com/GregMSThompson/bank-closures/internal/client/site"
	"github.com/GregMSThompson/bank-closures/internal/config"
	"github.com/GregMSThompson/bank-closures/internal/handlers"
	"github.com/GregMSThompson/bank-closures/internal/response"
	"github.com/GregMSThompson/bank-closures/internal/router"
	"github.com/GregMSThompson/bank-closures/internal/services"
	"github.com/GregMSThompson/bank-closures/internal/static"
)

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
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// clients
	site, err := siteclient.NewClient(bs.HTTPClient, cfg.SiteOrigin)
	exitOnError("site client init failed", err, bs.Log)

	// services
	pdserv := services.NewPageDataService(site)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.PageDataSvc = pdserv

	// router
	r := router.NewRouter(deps, static.NewHandler(os.DirFS(cfg.StaticDir)))
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		bs.Log.Info("site listening", "addr", cfg.ListenAddr, "origin", cfg.SiteOrigin, "static_dir", cfg.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		exitOnError("server start failed", err, bs.Log)
	case <-ctx.Done():
	}

	bs.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	exitOnError("server shutdown failed", err, bs.Log)
}
