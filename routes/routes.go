package routes

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"

	"courseapi/config"
	"courseapi/controllers"
	"courseapi/middleware"
	"courseapi/validators"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	protected := middleware.Protected(db, cfg)
	adminOnly := middleware.RequireAdmin()
	instructorOrAdmin := middleware.RequireInstructorOrAdmin()

	// Swagger UI
	app.Get("/api-docs/*", fiberSwagger.WrapHandler)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	auth := app.Group("/auth")
	auth.Post("/register", validators.Register(), authController.Register)
	auth.Post("/login", validators.Login(), authController.Login)
	auth.Get("/profile", protected, authController.GetProfile)

	// Category routes
	categoryController := controllers.NewCategoryController(db)
	categories := app.Group("/categories")
	categories.Get("/", categoryController.GetAllCategories)
	categories.Get("/:id", validators.IDParam(), categoryController.GetCategoryWithCourses)
	categories.Post("/", protected, adminOnly, validators.CreateCategory(), categoryController.CreateCategory)

	// Course routes. Search, filter and level are registered before
	// /:id so they are not swallowed by the id parameter.
	courseController := controllers.NewCourseController(db)
	courses := app.Group("/courses")
	courses.Get("/", courseController.GetAllCourses)
	courses.Get("/search", validators.SearchQuery(), courseController.SearchCourses)
	courses.Get("/filter", validators.PriceFilterQuery(), courseController.FilterCourses)
	courses.Get("/level/:level", validators.LevelParam(), courseController.GetCoursesByLevel)
	courses.Get("/:id", validators.IDParam(), courseController.GetCourseByID)
	courses.Post("/", protected, instructorOrAdmin, validators.CreateCourse(), courseController.CreateCourse)
	courses.Put("/:id", protected, instructorOrAdmin, validators.IDParam(), validators.UpdateCourse(), courseController.UpdateCourse)
	courses.Delete("/:id", protected, adminOnly, validators.IDParam(), courseController.DeleteCourse)
}
