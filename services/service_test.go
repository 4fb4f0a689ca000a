package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courseapi/config"
	"courseapi/database"
	"courseapi/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", JWTExpireHours: 24}
}

// newTestDB opens a fresh in-memory SQLite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category, err := NewCategoryService(db).Create(CreateCategoryInput{
		Name:        name,
		Description: "Category for tests",
	})
	require.NoError(t, err)
	return category
}

func courseInput(categoryID uint) CreateCourseInput {
	return CreateCourseInput{
		Title:       "Introduction to Go",
		Description: "A course about the Go programming language",
		Duration:    60,
		Level:       models.LevelBeginner,
		Price:       10,
		Published:   true,
		Instructor:  "Jean Dupont",
		CategoryID:  categoryID,
	}
}
