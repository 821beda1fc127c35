package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/bank-closures/internal/handlers"
	"github.com/GregMSThompson/bank-closures/internal/middleware"
)

func NewRouter(deps *handlers.Deps, static http.Handler) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	ph := handlers.NewPageHandlers(deps)
	pdh := handlers.NewPageDataHandlers(deps)

	r.Get("/", ph.RenderPage)
	r.Mount("/api/page-data", pdh.PageDataRoutes())
	r.Handle("/*", static)
	return r
}
