package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "skyouth_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = 100
	}
	return newLimiter(max, time.Minute, "Too many requests, please try again later.")
}

// SubmitRateLimiter: submit form publik (tanpa login) lebih ketat.
func SubmitRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	return newLimiter(max, time.Minute, "Too many submissions, please wait a minute.")
}
