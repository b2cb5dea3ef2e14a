package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"swolez-api/internal/config"
	"swolez-api/internal/database"
	"swolez-api/internal/handlers"
	"swolez-api/internal/logger"
	"swolez-api/internal/middleware"
	"swolez-api/internal/repository"
	"swolez-api/internal/routes"
)

// healthPath is polled by load balancers and kept out of the request log.
const healthPath = "/"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("❌ Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("❌ Server stopped with error")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBTimeout, log)
	if err != nil {
		// The API still serves / and /test without a database.
		log.WithError(err).Error("❌ Could not create MongoDB client")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := database.Disconnect(dctx, client); err != nil {
			log.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()

	var db *mongo.Database
	if client != nil {
		db = client.Database(cfg.DatabaseName)
	}
	store := repository.NewDocumentStore(db, cfg.DBTimeout)

	router := newRouter(cfg, log, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}

func newRouter(cfg *config.Config, log *logrus.Logger, store *repository.DocumentStore) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log, healthPath),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	productHandler := handlers.NewProductHandler(repository.NewProductRepository(store), log)
	healthHandler := handlers.NewHealthHandler(store, cfg.DatabaseConfigured(), log)
	routes.RegisterRoutes(router, productHandler, healthHandler)

	return router
}
