package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courseapi/config"
	"courseapi/database"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "testsecret", JWTExpireHours: 24}
	app := fiber.New()
	SetupRoutes(app, db, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func register(t *testing.T, app *fiber.App, username, email, role string) string {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, "")
	require.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	return data["token"].(string)
}

func createCategory(t *testing.T, app *fiber.App, adminToken, name string) float64 {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/categories", map[string]string{
		"name":        name,
		"description": "Category for tests",
	}, adminToken)
	require.Equal(t, fiber.StatusCreated, status)

	return result["data"].(map[string]interface{})["id"].(float64)
}

func courseBody(categoryID float64, published bool) map[string]interface{} {
	return map[string]interface{}{
		"title":       "Introduction to Go",
		"description": "A course about the Go programming language",
		"duration":    60,
		"level":       "beginner",
		"price":       10,
		"published":   published,
		"instructor":  "Jean Dupont",
		"categoryId":  categoryID,
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/auth/register", map[string]string{
		"username": "johndoe",
		"email":    "john@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, fiber.StatusCreated, status)
	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "instructor", user["role"])

	status, result = doJSON(t, app, "POST", "/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, fiber.StatusOK, status)
	token := result["data"].(map[string]interface{})["token"].(string)

	status, result = doJSON(t, app, "GET", "/auth/profile", nil, token)
	require.Equal(t, fiber.StatusOK, status)
	profile := result["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "johndoe", profile["username"])
	assert.Equal(t, "john@example.com", profile["email"])
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/auth/register", map[string]string{
		"username": "jo",
		"email":    "not-an-email",
		"password": "123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, result["success"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "johndoe", "john@example.com", "")

	status, _ := doJSON(t, app, "POST", "/auth/register", map[string]string{
		"username": "janedoe",
		"email":    "john@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "johndoe", "john@example.com", "")

	status, _ := doJSON(t, app, "POST", "/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProfileWithoutToken(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/auth/profile", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProfileWithGarbageToken(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/auth/profile", nil, "garbage")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	instructorToken := register(t, app, "teacher", "teacher@example.com", "instructor")
	adminToken := register(t, app, "admin", "admin@example.com", "admin")

	// Unauthenticated.
	status, _ := doJSON(t, app, "POST", "/categories", map[string]string{"name": "Design"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Instructor is not enough.
	status, _ = doJSON(t, app, "POST", "/categories", map[string]string{"name": "Design"}, instructorToken)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Admin works.
	status, result := doJSON(t, app, "POST", "/categories", map[string]string{"name": "Design"}, adminToken)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Design", result["data"].(map[string]interface{})["name"])
}

func TestListCategories(t *testing.T) {
	app := newTestApp(t)
	adminToken := register(t, app, "admin", "admin@example.com", "admin")

	createCategory(t, app, adminToken, "Design")
	createCategory(t, app, adminToken, "Marketing")

	status, result := doJSON(t, app, "GET", "/categories", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), result["count"])
	assert.Len(t, result["data"].([]interface{}), 2)
}

func TestGetCategoryWithCourses(t *testing.T) {
	app := newTestApp(t)
	adminToken := register(t, app, "admin", "admin@example.com", "admin")
	categoryID := createCategory(t, app, adminToken, "Design")

	status, _ := doJSON(t, app, "POST", "/courses", courseBody(categoryID, true), adminToken)
	require.Equal(t, fiber.StatusCreated, status)

	draft := courseBody(categoryID, false)
	draft["title"] = "Unpublished draft"
	status, _ = doJSON(t, app, "POST", "/courses", draft, adminToken)
	require.Equal(t, fiber.StatusCreated, status)

	path := fmt.Sprintf("/categories/%.0f", categoryID)
	status, result := doJSON(t, app, "GET", path, nil, "")
	require.Equal(t, fiber.StatusOK, status)
	courses := result["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, courses, 2) // drafts included here

	status, _ = doJSON(t, app, "GET", "/categories/9999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/courses", courseBody(1, true), "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateCourseValidation(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "teacher", "teacher@example.com", "instructor")

	body := courseBody(1, true)
	body["level"] = "expert"
	body["description"] = "too short"
	status, result := doJSON(t, app, "POST", "/courses", body, token)
	assert.Equal(t, fiber.StatusBadRequest, status)
	details := result["details"].(map[string]interface{})
	assert.Contains(t, details, "level")
	assert.Contains(t, details, "description")
}

func TestCreateCourseUnknownCategory(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "teacher", "teacher@example.com", "instructor")

	status, _ := doJSON(t, app, "POST", "/courses", courseBody(9999, true), token)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPublishedCourseListing(t *testing.T) {
	app := newTestApp(t)
	adminToken := register(t, app, "admin", "admin@example.com", "admin")
	categoryID := createCategory(t, app, adminToken, "Design")

	status, created := doJSON(t, app, "POST", "/courses", courseBody(categoryID, false), adminToken)
	require.Equal(t, fiber.StatusCreated, status)
	courseID := created["data"].(map[string]interface{})["id"].(float64)

	// Absent from the published listing.
	status, result := doJSON(t, app, "GET", "/courses", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), result["count"])

	// Present via direct id lookup.
	path := fmt.Sprintf("/courses/%.0f", courseID)
	status, result = doJSON(t, app, "GET", path, nil, "")
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, false, data["published"])
	assert.Equal(t, "Design", data["category"].(map[string]interface{})["name"])
}

func TestCoursesByLevelAndSearchAndFilter(t *testing.T) {
	app := newTestApp(t)
	adminToken := register(t, app, "admin", "admin@example.com", "admin")
	categoryID := createCategory(t, app, adminToken, "Design")

	cheap := courseBody(categoryID, true)
	cheap["title"] = "Typography basics"
	cheap["price"] = 15
	status, _ := doJSON(t, app, "POST", "/courses", cheap, adminToken)
	require.Equal(t, fiber.StatusCreated, status)

	expensive := courseBody(categoryID, true)
	expensive["title"] = "Advanced branding"
	expensive["level"] = "advanced"
	expensive["price"] = 80
	status, _ = doJSON(t, app, "POST", "/courses", expensive, adminToken)
	require.Equal(t, fiber.StatusCreated, status)

	status, result := doJSON(t, app, "GET", "/courses/level/advanced", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), result["count"])

	status, _ = doJSON(t, app, "GET", "/courses/level/expert", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result = doJSON(t, app, "GET", "/courses/search?keyword=Typography", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), result["count"])

	status, _ = doJSON(t, app, "GET", "/courses/search?keyword=x", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result = doJSON(t, app, "GET", "/courses/filter?minPrice=10&maxPrice=20", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), result["count"])

	status, result = doJSON(t, app, "GET", "/courses/filter?minPrice=10", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), result["count"])
}

func TestUpdateCoursePartial(t *testing.T) {
	app := newTestApp(t)
	adminToken := register(t, app, "admin", "admin@example.com", "admin")
	categoryID := createCategory(t, app, adminToken, "Design")

	status, created := doJSON(t, app, "POST", "/courses", courseBody(categoryID, true), adminToken)
	require.Equal(t, fiber.StatusCreated, status)
	courseID := created["data"].(map[string]interface{})["id"].(float64)

	path := fmt.Sprintf("/courses/%.0f", courseID)
	status, result := doJSON(t, app, "PUT", path, map[string]interface{}{"price": 39.99}, adminToken)
	require.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, 39.99, data["price"])
	assert.Equal(t, "Introduction to Go", data["title"])

	status, _ = doJSON(t, app, "PUT", "/courses/9999", map[string]interface{}{"price": 1.0}, adminToken)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteCourseRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	instructorToken := register(t, app, "teacher", "teacher@example.com", "instructor")
	adminToken := register(t, app, "admin", "admin@example.com", "admin")
	categoryID := createCategory(t, app, adminToken, "Design")

	status, created := doJSON(t, app, "POST", "/courses", courseBody(categoryID, true), instructorToken)
	require.Equal(t, fiber.StatusCreated, status)
	courseID := created["data"].(map[string]interface{})["id"].(float64)
	path := fmt.Sprintf("/courses/%.0f", courseID)

	// Instructor cannot delete.
	status, _ = doJSON(t, app, "DELETE", path, nil, instructorToken)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Admin on a nonexistent id gets 404.
	status, _ = doJSON(t, app, "DELETE", "/courses/9999", nil, adminToken)
	assert.Equal(t, fiber.StatusNotFound, status)

	// Admin delete returns the deleted course.
	status, result := doJSON(t, app, "DELETE", path, nil, adminToken)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, courseID, result["data"].(map[string]interface{})["id"])

	// Gone afterwards.
	status, _ = doJSON(t, app, "GET", path, nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
