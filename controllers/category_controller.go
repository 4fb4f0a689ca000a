package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/services"
	"courseapi/utils"
	"courseapi/validators"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{Categories: services.NewCategoryService(db)}
}

// GetAllCategories godoc
// @Summary List all categories
// @Description Returns every category, newest first
// @Tags categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories [get]
func (cc *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	categories, err := cc.Categories.FindAll()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch categories")
	}
	return utils.SuccessList(c, categories, len(categories))
}

// GetCategoryWithCourses godoc
// @Summary Get a category with its courses
// @Description Returns the category and all of its courses, published or not
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategoryWithCourses(c *fiber.Ctx) error {
	id := c.Locals("validatedID").(uint)

	category, err := cc.Categories.FindWithCourses(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not fetch category")
	}
	return utils.Success(c, fiber.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Creates a category; admin only
// @Tags categories
// @Accept json
// @Produce json
// @Param category body validators.CreateCategoryRequest true "Category data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	input := c.Locals("validatedCategory").(*validators.CreateCategoryRequest)

	category, err := cc.Categories.Create(services.CreateCategoryInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryNameTaken) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not create category")
	}
	return utils.Created(c, category, "Category created successfully")
}
