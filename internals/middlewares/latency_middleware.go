// file: internals/middlewares/latency_middleware.go
package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SimulatedLatency delays every request by d, for UX-realistic demos.
// Zero disables it; tests never enable it.
func SimulatedLatency(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d > 0 {
			time.Sleep(d)
		}
		return c.Next()
	}
}
