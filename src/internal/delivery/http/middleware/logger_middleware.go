package middleware

import (
	"fmt"
	"time"

	"dispatch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with its status and latency.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info(
			"http",
			fmt.Sprintf("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start)),
			"request",
			ctx.IP(),
		)
		return err
	}
}
