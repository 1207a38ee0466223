package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"godash/domain/core"
	"godash/internal/config"
	"godash/internal/dashboard"
	"godash/internal/dataset"
	apperrors "godash/internal/errors"
	"godash/internal/insights"
	"godash/internal/profiling"
	"godash/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dataset is loaded once; any failure here is fatal
	ds, err := dataset.Shared(appConfig.Data.Sheet).Load(ctx, appConfig.Data.Source)
	if err != nil {
		log.Fatalf("[%s] Failed to load dataset: %v", apperrors.GetCode(err), err)
	}

	opts := dashboard.DefaultOptions()
	opts.PreviewRows = appConfig.View.PreviewRows
	opts.Analysis.TopN = appConfig.View.TopN
	opts.Analysis.MaxBins = appConfig.View.MaxBins
	opts.Analysis.DensityPoints = appConfig.View.DensityPoints

	controller, err := dashboard.NewController(ds, opts)
	if err != nil {
		if errors.Is(err, core.ErrNoNumericColumns) {
			log.Fatalf("[%s] %s has no numeric columns to filter on", apperrors.GetCode(err), appConfig.Data.Source)
		}
		log.Fatalf("Failed to create dashboard controller: %v", err)
	}
	log.Printf("Dashboard ready: %d rows, numeric columns %v", ds.RowCount(), controller.NumericColumns())

	notes, err := insights.Load(appConfig.Paths.InsightsFile)
	if err != nil {
		log.Printf("Warning: %v, using default insights", err)
		notes = insights.Render([]byte(insights.DefaultMarkdown))
	}

	server, err := ui.NewServer(controller, ui.Options{
		Title:    appConfig.Server.Title,
		Subtitle: "Explore the dataset by filtering on a numeric column",
		GinMode:  appConfig.Server.GinMode,
		Insights: notes,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	if appConfig.Profiling.Enabled {
		g.Go(func() error {
			return profiling.Serve(gctx, appConfig.Profiling.Port)
		})
	}

	httpServer := server.HTTPServer(":" + appConfig.Server.Port)
	g.Go(func() error {
		log.Printf("Starting dashboard server on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("Shutting down dashboard server")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
