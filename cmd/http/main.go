package main

import (
	"annuaire-service/internal/app/config"
	"annuaire-service/internal/app/delivery/http/controllers"
	"annuaire-service/internal/app/delivery/http/middlewares"
	"annuaire-service/internal/app/delivery/http/routers"
	"annuaire-service/internal/app/drivers/database"
	"annuaire-service/internal/app/drivers/logger"
	"annuaire-service/internal/app/services/fhir_annuaire"
	"annuaire-service/internal/app/services/search"
	"annuaire-service/internal/app/services/shared/ratelimiter"
	"annuaire-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Outbound call quota
	callQuota := ratelimiter.NewCallQuota(
		redisRepository,
		bootstrap.Logger,
		bootstrap.InternalConfig.Annuaire.CallQuotaWindowSec,
		bootstrap.InternalConfig.Annuaire.CallQuotaMax,
	)

	// Registry client
	annuaireClient := fhir_annuaire.NewAnnuaireFhirClient(bootstrap.InternalConfig, callQuota, bootstrap.Logger)

	// Search
	searchUsecase := search.NewSearchUsecase(annuaireClient, bootstrap.InternalConfig, bootstrap.Logger)
	searchController := controllers.NewSearchController(
		bootstrap.Logger,
		searchUsecase,
		bootstrap.InternalConfig.App.RequestTimeoutInSeconds,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, searchController)
}
