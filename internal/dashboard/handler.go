package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/metrics
func MetricsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if m := cachedMetrics(ctx); m != nil {
			return c.JSON(m)
		}

		m, err := ComputeMetrics(time.Now())
		if err != nil {
			return err
		}
		storeMetrics(ctx, m)

		return c.JSON(m)
	}
}
