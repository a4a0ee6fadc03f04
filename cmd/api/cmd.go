package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dalili-app/dalili-backend/internal/bootstrap"
	"github.com/dalili-app/dalili-backend/internal/config"
	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/handlers"
	"github.com/dalili-app/dalili-backend/internal/response"
	"github.com/dalili-app/dalili-backend/internal/router"
	"github.com/dalili-app/dalili-backend/internal/services"
	"github.com/dalili-app/dalili-backend/internal/session"
	"github.com/dalili-app/dalili-backend/internal/store"
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
	bstore := store.NewBankStore()
	brstore := store.NewBranchStore()
	fstore := store.NewFavoriteStore()

	// seed data
	seed := store.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = store.LoadSeedFile(cfg.SeedFile)
		exitOnError("seed load failed", err, bs.Log)
	}
	err = seed.Apply(context.Background(), bstore, brstore, time.Now())
	exitOnError("seed apply failed", err, bs.Log)

	// services
	dserv := services.NewDirectoryService(bstore, brstore, fstore)
	rserv := services.NewReportService(brstore)
	var gen services.TextGenerator
	if bs.GeminiAdapter != nil {
		gen = bs.GeminiAdapter
	}
	sserv := services.NewSummaryService(gen, brstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Validate = validator.New()
	deps.DirectorySvc = dserv
	deps.ReportSvc = rserv
	deps.SummarySvc = sserv
	deps.Tiles = dto.TileConfig{URL: cfg.TileURL, Attribution: cfg.TileAttribution}

	// router
	sessions := session.NewRegistry()
	r := router.NewRouter(deps, sessions)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
