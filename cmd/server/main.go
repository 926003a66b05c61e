package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jfgm299/centro-control-personal/internal/api"
	"github.com/Jfgm299/centro-control-personal/internal/config"
	"github.com/Jfgm299/centro-control-personal/internal/db"
	"github.com/Jfgm299/centro-control-personal/internal/jobs"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/routes"
)

// @title Centro Control API
// @version 1.0
// @description Personal tracking backend: expenses, gym, flights, macros, and travel.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("centro control starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	// sqlx connection: health checks and raw aggregate queries
	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("failed to connect to postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to postgres (sqlx): %v", err)
	}
	logging.Info("connected to postgres (sqlx)")

	// GORM connection: everything else
	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("failed to connect to postgres (gorm)", "error", err.Error())
		log.Fatalf("failed to connect to postgres (gorm): %v", err)
	}
	logging.Info("connected to postgres (gorm)")

	if err := db.AutoMigrate(gormDB); err != nil {
		logging.Error("schema migration failed", "error", err.Error())
		log.Fatalf("schema migration failed: %v", err)
	}
	logging.Info("schema migrated")

	deps, err := api.InitDependencies(cfg)
	if err != nil {
		logging.Error("failed to initialize dependencies", "error", err.Error())
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Cache.Close()

	jobs.InitializeJobs(context.Background(), gormDB)
	logging.Info("background jobs scheduled")

	router := routes.RegisterRoutes(deps)

	// Metrics endpoint lives outside the chi tree so it skips the
	// request middleware chain.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	addr := ":" + cfg.Port
	logging.Info("server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
