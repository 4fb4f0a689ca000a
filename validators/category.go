package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseapi/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory validates the category creation payload.
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) < 3 || len(reqData.Name) > 100 {
			errors["name"] = "Name must be between 3 and 100 characters"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if len(reqData.Description) > 500 {
			errors["description"] = "Description cannot exceed 500 characters"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
