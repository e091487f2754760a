package route

import (
	"dispatch-service/src/internal/delivery/http"
	"dispatch-service/src/internal/delivery/http/middleware"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	Log                  log.Log
	AuthMiddleware       fiber.Handler
	TenantController     *http.TenantController
	CustomerController   *http.CustomerController
	DriverController     *http.DriverController
	DispatcherController *http.DispatcherController
	VehicleController    *http.VehicleController
	BookingController    *http.BookingController
	PaymentController    *http.PaymentController
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	// Gateway callbacks authenticate by payload signature, not bearer token.
	c.App.Post("/payments/v1/gateway/confirm", c.PaymentController.ConfirmGateway)

	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	tenants := c.App.Group("/tenants/v1", middleware.RequireRoles(string(scope.RoleSuperAdmin)))
	tenants.Post("/", c.TenantController.Create)
	tenants.Get("/", c.TenantController.List)
	tenants.Get("/jobs/:jobId", c.TenantController.JobStatus)
	tenants.Get("/:id", c.TenantController.Get)
	tenants.Put("/:id", c.TenantController.Update)
	tenants.Delete("/:id", c.TenantController.Delete)
	tenants.Post("/:id/reset", c.TenantController.RequestReset)

	customers := c.App.Group("/customers/v1")
	customers.Post("/", c.CustomerController.Create)
	customers.Get("/", c.CustomerController.List)
	customers.Get("/:id", c.CustomerController.Get)
	customers.Put("/:id", c.CustomerController.Update)
	customers.Delete("/:id", c.CustomerController.Archive)
	customers.Post("/:id/restore", c.CustomerController.Restore)

	drivers := c.App.Group("/drivers/v1")
	drivers.Post("/", c.DriverController.Create)
	drivers.Get("/", c.DriverController.List)
	drivers.Get("/:id", c.DriverController.Get)
	drivers.Put("/:id", c.DriverController.Update)
	drivers.Delete("/:id", c.DriverController.Archive)
	drivers.Post("/:id/restore", c.DriverController.Restore)

	dispatchers := c.App.Group("/dispatchers/v1")
	dispatchers.Post("/", c.DispatcherController.Create)
	dispatchers.Get("/", c.DispatcherController.List)
	dispatchers.Get("/:id", c.DispatcherController.Get)
	dispatchers.Put("/:id", c.DispatcherController.Update)
	dispatchers.Delete("/:id", c.DispatcherController.Archive)
	dispatchers.Post("/:id/restore", c.DispatcherController.Restore)

	vehicles := c.App.Group("/vehicles/v1")
	vehicles.Post("/", c.VehicleController.Create)
	vehicles.Get("/", c.VehicleController.List)
	vehicles.Get("/:id", c.VehicleController.Get)
	vehicles.Put("/:id", c.VehicleController.Update)
	vehicles.Delete("/:id", c.VehicleController.Archive)
	vehicles.Post("/:id/restore", c.VehicleController.Restore)

	bookings := c.App.Group("/bookings/v1")
	bookings.Post("/", c.BookingController.Create)
	bookings.Get("/", c.BookingController.List)
	bookings.Get("/:id", c.BookingController.Get)
	bookings.Post("/:id/transition", c.BookingController.Transition)
	bookings.Get("/:id/payments", c.PaymentController.History)

	payments := c.App.Group("/payments/v1")
	payments.Post("/", c.PaymentController.Record)
}
