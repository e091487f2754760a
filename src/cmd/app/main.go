package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dispatch-service/src/internal/config"
	"dispatch-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "INFO")
	viperConfig.SetDefault("app.name", "DISPATCH_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("asynq.concurrency", 5)
	viperConfig.SetDefault("commission.driver_percent", 75)
	viperConfig.SetDefault("commission.admin_percent", 20)
	viperConfig.SetDefault("commission.dispatcher_percent", 2)
	viperConfig.SetDefault("commission.super_admin_percent", 3)
	viperConfig.SetDefault("commission.hourly_rate", 400)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig)
	mux := asynq.NewServeMux()

	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		AsynqClient: asynqClient,
		Async:       mux,
	})

	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("main", fmt.Sprintf("asynq server stopped: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("main", "server is shutting down...", "graceful", "")
		asynqServer.Shutdown()
		if err := asynqClient.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("error closing asynq client: %v", err), "graceful", "")
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("error closing kafka producer: %v", err), "graceful", "")
			}
		}
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("error during shutdown: %v", err), "graceful", "")
		}
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("failed to start server: %v", err), "main", "")
	}

	logger.Info("main", fmt.Sprintf("server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
