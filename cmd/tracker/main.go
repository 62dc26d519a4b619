package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlibekovAA/exercise-tracker/internal/common/clock"
	"github.com/AlibekovAA/exercise-tracker/internal/common/config"
	commoncrypto "github.com/AlibekovAA/exercise-tracker/internal/common/crypto"
	"github.com/AlibekovAA/exercise-tracker/internal/common/db"
	commonhttp "github.com/AlibekovAA/exercise-tracker/internal/common/http"
	"github.com/AlibekovAA/exercise-tracker/internal/common/logger"
	srv "github.com/AlibekovAA/exercise-tracker/internal/common/server"
	exerciserepo "github.com/AlibekovAA/exercise-tracker/internal/exercise/repository"
	trackerhttp "github.com/AlibekovAA/exercise-tracker/internal/tracker/http"
	"github.com/AlibekovAA/exercise-tracker/internal/tracker/service"
	userrepo "github.com/AlibekovAA/exercise-tracker/internal/user/repository"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_DIR"), "tracker", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		users     userrepo.Repository
		exercises exerciserepo.Repository
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool := db.NewPool(log, cfg.DatabaseURL)
		defer pool.Close()
		users = userrepo.NewPgRepository(pool)
		exercises = exerciserepo.NewPgRepository(pool)
	default:
		users = userrepo.NewMemoryRepository()
		exercises = exerciserepo.NewMemoryRepository()
	}
	log.Infof("storage driver: %s", cfg.StorageDriver)

	tracker := service.NewTrackerService(service.TrackerServiceDeps{
		Users:     users,
		Exercises: exercises,
		IDs:       commoncrypto.NewUUIDGenerator(),
		Clock:     clock.NewRealClock(),
		Log:       log,
	})

	handler := trackerhttp.NewHandler(tracker, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	rateLimited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/health" || path == "/metrics" {
			baseHandler.ServeHTTP(w, r)
			return
		}
		rateLimiter.Middleware(baseHandler).ServeHTTP(w, r)
	})

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, rateLimited)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			rateLimiter.Stop()
			return nil
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "tracker", shutdownHooks)
}
