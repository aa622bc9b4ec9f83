package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthassistant/internal/config"
	"github.com/Skufu/healthassistant/internal/diagnosis"
	"github.com/Skufu/healthassistant/internal/distribution"
	"github.com/Skufu/healthassistant/internal/history"
	"github.com/Skufu/healthassistant/internal/oracle"
	"github.com/Skufu/healthassistant/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()
	var (
		recorder history.Recorder = history.NewMemoryRecorder(cfg.History.Capacity)
		db       web.HealthChecker
	)
	if cfg.Database.Enabled {
		pg, err := history.Connect(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer pg.Close()
		recorder, db = pg, pg
	}

	router, err := setupRouter(cfg, recorder, db)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("server listening on :%s", cfg.Server.Port)
	waitForShutdown(server)
}

// setupRouter loads the classifiers and dataset, then builds the web server around them.
func setupRouter(cfg *config.Config, recorder history.Recorder, db web.HealthChecker) (*gin.Engine, error) {
	oracles, err := oracle.Load(cfg.Models.Dir)
	if err != nil {
		return nil, err
	}
	assessor, err := diagnosis.NewAssessor(oracles)
	if err != nil {
		return nil, err
	}

	dataset, err := loadDataset(cfg.Data.SampleFile)
	if err != nil {
		return nil, err
	}

	srv, err := web.NewServer(web.Deps{
		Assessor:    assessor,
		Dataset:     dataset,
		Recorder:    recorder,
		DB:          db,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	if err != nil {
		return nil, err
	}
	return srv.Router(), nil
}

func loadDataset(path string) (*distribution.Dataset, error) {
	records := distribution.SampleRecords()
	if path != "" {
		loaded, err := distribution.LoadRecords(path)
		if err != nil {
			return nil, err
		}
		records = loaded
	}
	return distribution.NewDataset(records)
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
