package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseapi/models"
)

func TestCategoryCreateAndFindAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	first, err := svc.Create(CreateCategoryInput{Name: "Web Development"})
	require.NoError(t, err)
	second, err := svc.Create(CreateCategoryInput{Name: "Data Science"})
	require.NoError(t, err)

	categories, err := svc.FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Newest first.
	assert.Equal(t, second.ID, categories[0].ID)
	assert.Equal(t, first.ID, categories[1].ID)
}

func TestCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Create(CreateCategoryInput{Name: "Design"})
	require.NoError(t, err)

	_, err = svc.Create(CreateCategoryInput{Name: "Design"})
	assert.ErrorIs(t, err, ErrCategoryNameTaken)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCategoryFindWithCoursesIncludesUnpublished(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	courses := NewCourseService(db)

	category := createCategory(t, db, "Design")

	published := courseInput(category.ID)
	_, err := courses.Create(published)
	require.NoError(t, err)

	draft := courseInput(category.ID)
	draft.Title = "Unpublished draft"
	draft.Published = false
	_, err = courses.Create(draft)
	require.NoError(t, err)

	found, err := categories.FindWithCourses(category.ID)
	require.NoError(t, err)
	// Drafts are listed here too; only the public course listing
	// filters on published.
	assert.Len(t, found.Courses, 2)
}

func TestCategoryFindWithCoursesNotFound(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	_, err := svc.FindWithCourses(9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
