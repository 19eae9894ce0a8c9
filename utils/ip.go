package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP resolves the submitter's network origin from the forwarded-IP
// header chain: CF-Connecting-IP first, then the first entry of
// X-Forwarded-For, then "unknown". Used for throttling only when the
// submission declares no agent id.
func ClientIP(c *fiber.Ctx) string {
	if ip := c.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	return "unknown"
}
