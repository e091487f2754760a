package config

import (
	"context"

	"dispatch-service/src/internal/commission"
	"dispatch-service/src/internal/delivery/http"
	"dispatch-service/src/internal/delivery/http/middleware"
	"dispatch-service/src/internal/delivery/http/route"
	"dispatch-service/src/internal/gateway/messaging"
	"dispatch-service/src/internal/job"
	"dispatch-service/src/internal/repository"
	"dispatch-service/src/internal/usecase"
	"dispatch-service/src/pkg/databases/mysql"
	kafkaPkg "dispatch-service/src/pkg/kafka"
	"dispatch-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkg.Producer
	Redis       redis.UniversalClient
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	rates, err := commission.LoadRates(config.Config)
	if err != nil {
		config.Log.Error("bootstrap", err.Error(), "LoadRates", "")
		panic(err)
	}

	// setup repositories
	tenantRepository := repository.NewTenantRepository(config.DB)
	customerRepository := repository.NewCustomerRepository(config.DB)
	driverRepository := repository.NewDriverRepository(config.DB)
	dispatcherRepository := repository.NewDispatcherRepository(config.DB)
	vehicleRepository := repository.NewVehicleRepository(config.DB)
	bookingRepository := repository.NewBookingRepository(config.DB)
	paymentRepository := repository.NewPaymentRepository(config.DB)
	jobRepository := repository.NewJobRepository(config.DB)

	bookingProducer := messaging.NewBookingProducer(config.Producer, config.Log)
	paymentProducer := messaging.NewPaymentProducer(config.Producer, config.Log)

	// setup use cases
	tenantUseCase := usecase.NewTenantUseCase(
		config.Log,
		config.Validate,
		tenantRepository,
		jobRepository,
		config.Redis,
		config.AsynqClient,
	)
	customerUseCase := usecase.NewCustomerUseCase(config.Log, config.Validate, customerRepository)
	driverUseCase := usecase.NewDriverUseCase(config.Log, config.Validate, driverRepository)
	dispatcherUseCase := usecase.NewDispatcherUseCase(config.Log, config.Validate, dispatcherRepository)
	vehicleUseCase := usecase.NewVehicleUseCase(config.Log, config.Validate, vehicleRepository)
	bookingUseCase := usecase.NewBookingUseCase(
		config.Log,
		config.Validate,
		rates,
		tenantRepository,
		customerRepository,
		driverRepository,
		dispatcherRepository,
		vehicleRepository,
		bookingRepository,
		bookingProducer,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		bookingRepository,
		paymentRepository,
		paymentProducer,
	)

	// setup controllers
	tenantController := http.NewTenantController(tenantUseCase, config.Log)
	customerController := http.NewCustomerController(customerUseCase, config.Log)
	driverController := http.NewDriverController(driverUseCase, config.Log)
	dispatcherController := http.NewDispatcherController(dispatcherUseCase, config.Log)
	vehicleController := http.NewVehicleController(vehicleUseCase, config.Log)
	bookingController := http.NewBookingController(bookingUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)

	// background tasks
	jobHandler := job.NewHandler(config.Log, tenantRepository, jobRepository)
	config.Async.HandleFunc(job.TypeTenantReset, func(ctx context.Context, task *asynq.Task) error {
		return jobHandler.HandleTenantReset(ctx, task.Payload())
	})

	authMiddleware := middleware.VerifyBearer(config.Config, config.Log)
	routeConfig := route.RouteConfig{
		App:                  config.App,
		Log:                  config.Log,
		AuthMiddleware:       authMiddleware,
		TenantController:     tenantController,
		CustomerController:   customerController,
		DriverController:     driverController,
		DispatcherController: dispatcherController,
		VehicleController:    vehicleController,
		BookingController:    bookingController,
		PaymentController:    paymentController,
	}
	routeConfig.Setup()
}
