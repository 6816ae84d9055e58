package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lurra-labs/elevate/internal/core/ports"
)

// CORSMiddleware applies the configured allow-origin to every response,
// errors included, so browser clients can read failure envelopes too. The
// origin lives in the snapshot and follows it through invalidation.
func CORSMiddleware(snapshots ports.SnapshotProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if snap, snapErr := snapshots.Snapshot(c.Context()); snapErr == nil && snap.CORSOrigin != "" {
			c.Set("Access-Control-Allow-Origin", snap.CORSOrigin)
		}

		return err
	}
}
