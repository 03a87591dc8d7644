package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the request's RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key read by logger.WithRayID.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a fresh RayID.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := uuid.NewString()
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the RayID of the current request, or "" if none was set.
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
