package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/types"
)

// APIVersion is the version served when the client does not ask for one
const APIVersion = "1.0.0"

// VersionMiddleware negotiates X-Api-Version. Short forms ("1", "1.0") expand to
// the full version; any major other than 1 is refused with 400.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimPrefix(strings.TrimSpace(c.Get("X-Api-Version")), "v")

		switch version {
		case "", "1", "1.0":
			version = APIVersion
		}
		if major, _, _ := strings.Cut(version, "."); major != "1" {
			return types.NewError(fiber.StatusBadRequest, "version", "unsupported API version %q, this server speaks %s", version, APIVersion)
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
