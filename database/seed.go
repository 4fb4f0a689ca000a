package database

import (
	"log"

	"gorm.io/gorm"

	"courseapi/models"
	"courseapi/utils"
)

// Seed fills the database with demo users, categories and courses.
// It is idempotent: nothing is inserted if any user already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	instructorPassword, err := utils.HashPassword("instructor123")
	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "admin", Email: "admin@example.com", Password: adminPassword, Role: models.RoleAdmin},
		{Username: "instructor1", Email: "instructor@example.com", Password: instructorPassword, Role: models.RoleInstructor},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Web Development", Description: "Modern web development courses (HTML, CSS, JavaScript, React, Node.js)"},
		{Name: "Data Science", Description: "Data analysis, machine learning and artificial intelligence"},
		{Name: "Design", Description: "Graphic design, UI/UX and creative tools"},
		{Name: "Digital Marketing", Description: "Online marketing, SEO, social media and digital advertising"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	courses := []models.Course{
		{
			Title:       "Introduction to JavaScript",
			Description: "Learn the basics of JavaScript step by step: variables, functions, loops, objects and the DOM.",
			Duration:    120,
			Level:       models.LevelBeginner,
			Price:       29.99,
			Published:   true,
			Instructor:  "Jean Dupont",
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Advanced React",
			Description: "Master React and its advanced concepts: hooks, context API, performance, unit tests and patterns.",
			Duration:    180,
			Level:       models.LevelAdvanced,
			Price:       49.99,
			Published:   true,
			Instructor:  "Marie Martin",
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Node.js and Express",
			Description: "Build REST APIs with Node.js and Express: routing, middleware, authentication and persistence.",
			Duration:    150,
			Level:       models.LevelIntermediate,
			Price:       39.99,
			Published:   true,
			Instructor:  "Jean Dupont",
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Python for Data Science",
			Description: "Data analysis with Python: pandas, numpy, matplotlib and first machine learning models.",
			Duration:    200,
			Level:       models.LevelBeginner,
			Price:       44.99,
			Published:   true,
			Instructor:  "Sophie Bernard",
			CategoryID:  categories[1].ID,
		},
		{
			Title:       "UI/UX Design Fundamentals",
			Description: "Interface and experience design principles: wireframes, prototypes and user testing.",
			Duration:    90,
			Level:       models.LevelBeginner,
			Price:       24.99,
			Published:   false,
			Instructor:  "Claire Dubois",
			CategoryID:  categories[2].ID,
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		return err
	}

	log.Println("Database seeded")
	return nil
}
