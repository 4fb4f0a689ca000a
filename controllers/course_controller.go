package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/services"
	"courseapi/utils"
	"courseapi/validators"
)

type CourseController struct {
	Courses *services.CourseService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Courses: services.NewCourseService(db)}
}

// GetAllCourses godoc
// @Summary List published courses
// @Description Returns all published courses, newest first
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := cc.Courses.FindAllPublished()
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch courses")
	}
	return utils.SuccessList(c, courses, len(courses))
}

// GetCourseByID godoc
// @Summary Get a course by id
// @Description Returns the course with its category; unpublished courses are reachable by direct id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id := c.Locals("validatedID").(uint)

	course, err := cc.Courses.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not fetch course")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// GetCoursesByLevel godoc
// @Summary List published courses by level
// @Tags courses
// @Produce json
// @Param level path string true "Course level" Enums(beginner, intermediate, advanced)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/level/{level} [get]
func (cc *CourseController) GetCoursesByLevel(c *fiber.Ctx) error {
	level := c.Locals("validatedLevel").(string)

	courses, err := cc.Courses.FindByLevel(level)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch courses")
	}
	return utils.SuccessList(c, courses, len(courses))
}

// SearchCourses godoc
// @Summary Search published courses
// @Description Substring match against title and description
// @Tags courses
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/search [get]
func (cc *CourseController) SearchCourses(c *fiber.Ctx) error {
	keyword := c.Locals("validatedKeyword").(string)

	courses, err := cc.Courses.Search(keyword)
	if err != nil {
		return utils.InternalServerError(c, "Could not search courses")
	}
	return utils.SuccessList(c, courses, len(courses))
}

// FilterCourses godoc
// @Summary Filter published courses by price
// @Description Inclusive bounds; either bound may be omitted
// @Tags courses
// @Produce json
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/filter [get]
func (cc *CourseController) FilterCourses(c *fiber.Ctx) error {
	minPrice, _ := c.Locals("validatedMinPrice").(*float64)
	maxPrice, _ := c.Locals("validatedMaxPrice").(*float64)

	courses, err := cc.Courses.FilterByPrice(minPrice, maxPrice)
	if err != nil {
		return utils.InternalServerError(c, "Could not filter courses")
	}
	return utils.SuccessList(c, courses, len(courses))
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course; instructor or admin only
// @Tags courses
// @Accept json
// @Produce json
// @Param course body validators.CreateCourseRequest true "Course data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /courses [post]
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	input := c.Locals("validatedCourse").(*validators.CreateCourseRequest)

	course, err := cc.Courses.Create(services.CreateCourseInput{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Level:       input.Level,
		Price:       input.Price,
		Published:   input.Published,
		Instructor:  input.Instructor,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not create course")
	}
	return utils.Created(c, course, "Course created successfully")
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Partial update; only supplied fields change
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param course body validators.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id} [put]
func (cc *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Locals("validatedID").(uint)
	input := c.Locals("validatedCourseUpdate").(*validators.UpdateCourseRequest)

	course, err := cc.Courses.Update(id, services.UpdateCourseInput{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Level:       input.Level,
		Price:       input.Price,
		Published:   input.Published,
		Instructor:  input.Instructor,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return utils.NotFound(c, err.Error())
		}
		if errors.Is(err, services.ErrCategoryNotFound) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not update course")
	}
	return utils.Success(c, fiber.StatusOK, course, "Course updated successfully")
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Removes a course and returns its prior state; admin only
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Locals("validatedID").(uint)

	course, err := cc.Courses.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not delete course")
	}
	return utils.Success(c, fiber.StatusOK, course, "Course deleted successfully")
}
