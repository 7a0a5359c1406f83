package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"resortpay/config"
	"resortpay/middleware"
	"resortpay/repository"
	"resortpay/routes"
	"resortpay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	utils.InitLogger(utils.LogConfig{
		Env:         cfg.Env,
		Level:       cfg.LogLevel,
		ServiceName: "resortpay",
		Version:     version,
	})
	defer utils.SyncLogger()
	log := utils.L()

	if strings.ToLower(cfg.Env) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.InitMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sin base de datos el proceso sigue arrancando en modo degradado.
	db := config.NewDatabase(utils.Named("mongo"))
	if err := db.Connect(ctx, cfg.MongoURI, cfg.DBName); err != nil {
		log.Error("No se pudo conectar a MongoDB, modo degradado", zap.Error(err))
	}
	middleware.SetDatabaseUp(db.State() == config.StateConnected)

	if db.State() == config.StateConnected {
		if _, err := db.Seed(ctx); err != nil {
			log.Error("Error al inicializar productos", zap.Error(err))
		}
	}

	scheduler, err := utils.StartHealthCheck(db, cfg.HealthcheckInterval, middleware.SetDatabaseUp)
	if err != nil {
		log.Error("No se pudo programar el health check", zap.Error(err))
	}

	router := routes.NewEngine(routes.EngineOptions{
		Logger:            utils.Named("http"),
		CORSOrigins:       cfg.CORSOrigins,
		RequestTimeout:    cfg.RequestTimeout,
		MetricsAllowedIPs: cfg.MetricsAllowedIPs,
	}, routes.Dependencies{
		Database:     db,
		Guests:       repository.NewGuestRepository(db),
		Transactions: repository.NewTransactionRepository(db),
		Products:     repository.NewProductRepository(db),
		Version:      version,
		JWTSecret:    cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Servidor escuchando",
			zap.String("port", cfg.Port),
			zap.Bool("db_configured", cfg.HasDatabase()),
			zap.String("db_state", db.State().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Shutdown deja terminar los requests en curso antes de cerrar la base.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("Error al cerrar MongoDB", zap.Error(err))
	}
}
