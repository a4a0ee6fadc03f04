package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dalili-app/dalili-backend/internal/handlers"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/session"
)

func NewRouter(deps *handlers.Deps, sessions *session.Registry) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	sm := middleware.NewMiddleware(sessions)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(sm.Session)

	bh := handlers.NewBankHandlers(deps)
	rh := handlers.NewReportHandlers(deps)
	suh := handlers.NewSummaryHandlers(deps)
	seh := handlers.NewSessionHandlers(deps)
	mh := handlers.NewMapHandlers(deps)

	r.Get("/", handlers.ServeShell)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/banks", bh.BankRoutes())
		r.Mount("/branches", bh.BranchRoutes())
		r.Mount("/reports", rh.ReportRoutes())
		r.Mount("/summaries", suh.SummaryRoutes())
		r.Mount("/session", seh.SessionRoutes())
		r.Mount("/map", mh.MapRoutes())
	})

	return r
}
