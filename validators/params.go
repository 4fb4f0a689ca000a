package validators

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"courseapi/utils"
)

// IDParam validates that the :id route parameter is a positive integer
// and stores it in the context.
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil || id < 1 {
			return utils.ValidationError(c, map[string]string{
				"id": "ID must be a positive integer",
			})
		}
		c.Locals("validatedID", uint(id))
		return c.Next()
	}
}
