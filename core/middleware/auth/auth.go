package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header that carries the API key.
const HeaderName = "X-API-Key"

// Config configures the API key middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
	// Next skips the check for requests it returns true for.
	Next func(c *fiber.Ctx) bool
}

// New returns a middleware that rejects requests without the configured key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || (cfg.Next != nil && cfg.Next(c)) {
			return c.Next()
		}

		got := []byte(c.Get(HeaderName))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing API key")
		}
		return c.Next()
	}
}

// SafeMethods is a Next func that lets GET and HEAD requests through.
func SafeMethods(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead
}
