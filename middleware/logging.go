package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"courseapi/utils"
)

// LoggingMiddleware logs every request with method, path, status and
// latency.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()
		reset := "\033[0m"

		logger.Printf("%s %s%s%s %s %s%d%s %v",
			c.IP(),
			utils.MethodColor(method), method, reset,
			c.Path(),
			utils.StatusColor(status), status, reset,
			time.Since(start),
		)

		return err
	}
}
