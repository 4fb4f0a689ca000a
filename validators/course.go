package validators

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseapi/models"
	"courseapi/utils"
)

const levelErrorMessage = "Level must be: beginner, intermediate or advanced"

type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	Published   bool    `json:"published"`
	Instructor  string  `json:"instructor"`
	CategoryID  uint    `json:"categoryId"`
}

// CreateCourse validates the course creation payload.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if len(reqData.Title) < 3 || len(reqData.Title) > 200 {
			errors["title"] = "Title must be between 3 and 200 characters"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if len(reqData.Description) < 10 {
			errors["description"] = "Description must be at least 10 characters long"
		}

		if reqData.Duration < 1 {
			errors["duration"] = "Duration must be a positive number of minutes"
		}

		if !models.ValidLevel(reqData.Level) {
			errors["level"] = levelErrorMessage
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must be zero or a positive number"
		}

		reqData.Instructor = strings.TrimSpace(reqData.Instructor)
		if reqData.Instructor == "" {
			errors["instructor"] = "Instructor name is required"
		}

		if reqData.CategoryID < 1 {
			errors["categoryId"] = "Category ID must be a positive integer"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest carries a partial patch; absent fields stay nil.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Level       *string  `json:"level"`
	Price       *float64 `json:"price"`
	Published   *bool    `json:"published"`
	Instructor  *string  `json:"instructor"`
	CategoryID  *uint    `json:"categoryId"`
}

// UpdateCourse validates the partial update payload. Only supplied
// fields are checked.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.Title != nil {
			*reqData.Title = strings.TrimSpace(*reqData.Title)
			if len(*reqData.Title) < 3 || len(*reqData.Title) > 200 {
				errors["title"] = "Title must be between 3 and 200 characters"
			}
		}

		if reqData.Description != nil {
			*reqData.Description = strings.TrimSpace(*reqData.Description)
			if len(*reqData.Description) < 10 {
				errors["description"] = "Description must be at least 10 characters long"
			}
		}

		if reqData.Duration != nil && *reqData.Duration < 1 {
			errors["duration"] = "Duration must be a positive number of minutes"
		}

		if reqData.Level != nil && !models.ValidLevel(*reqData.Level) {
			errors["level"] = levelErrorMessage
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must be zero or a positive number"
		}

		if reqData.Instructor != nil {
			*reqData.Instructor = strings.TrimSpace(*reqData.Instructor)
			if *reqData.Instructor == "" {
				errors["instructor"] = "Instructor name cannot be empty"
			}
		}

		if reqData.CategoryID != nil && *reqData.CategoryID < 1 {
			errors["categoryId"] = "Category ID must be a positive integer"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// LevelParam validates the :level route parameter.
func LevelParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := c.Params("level")
		if !models.ValidLevel(level) {
			return utils.ValidationError(c, map[string]string{
				"level": levelErrorMessage,
			})
		}
		c.Locals("validatedLevel", level)
		return c.Next()
	}
}

// SearchQuery validates the keyword query parameter.
func SearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		keyword := strings.TrimSpace(c.Query("keyword"))
		if len(keyword) < 2 {
			return utils.ValidationError(c, map[string]string{
				"keyword": "Keyword must be at least 2 characters long",
			})
		}
		c.Locals("validatedKeyword", keyword)
		return c.Next()
	}
}

// PriceFilterQuery validates the optional minPrice/maxPrice query
// parameters; either may be omitted.
func PriceFilterQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		var minPrice, maxPrice *float64

		if raw := c.Query("minPrice"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value < 0 {
				errors["minPrice"] = "Minimum price must be zero or a positive number"
			} else {
				minPrice = &value
			}
		}

		if raw := c.Query("maxPrice"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value < 0 {
				errors["maxPrice"] = "Maximum price must be zero or a positive number"
			} else {
				maxPrice = &value
			}
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedMinPrice", minPrice)
		c.Locals("validatedMaxPrice", maxPrice)
		return c.Next()
	}
}
