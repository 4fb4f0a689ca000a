package services

import (
	"errors"

	"gorm.io/gorm"

	"courseapi/models"
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

// FindAllPublished returns published courses, newest first, each with
// its category eager-loaded.
func (s *CourseService) FindAllPublished() ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.Preload("Category").
		Where("published = ?", true).
		Order("created_at DESC, id DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID returns a course with its category. Unpublished courses are
// still reachable here: direct id lookup is how owners preview drafts.
func (s *CourseService) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.DB.Preload("Category").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// FindByLevel returns published courses matching the exact level.
func (s *CourseService) FindByLevel(level string) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.Preload("Category").
		Where("level = ? AND published = ?", level, true).
		Order("created_at DESC, id DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Search returns published courses whose title or description contains
// the keyword. Plain LIKE substring match; case behavior follows the
// database collation.
func (s *CourseService) Search(keyword string) ([]models.Course, error) {
	pattern := "%" + keyword + "%"
	var courses []models.Course
	err := s.DB.Preload("Category").
		Where("published = ? AND (title LIKE ? OR description LIKE ?)", true, pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// FilterByPrice returns published courses with price inside the
// inclusive bounds. A nil bound is unbounded on that side.
func (s *CourseService) FilterByPrice(minPrice, maxPrice *float64) ([]models.Course, error) {
	query := s.DB.Preload("Category").Where("published = ?", true)
	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}

	var courses []models.Course
	if err := query.Order("created_at DESC, id DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

type CreateCourseInput struct {
	Title       string
	Description string
	Duration    int
	Level       string
	Price       float64
	Published   bool
	Instructor  string
	CategoryID  uint
}

// Create inserts a course after checking its category exists, then
// re-fetches it with the joined category.
func (s *CourseService) Create(input CreateCourseInput) (*models.Course, error) {
	var category models.Category
	if err := s.DB.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Level:       input.Level,
		Price:       input.Price,
		Published:   input.Published,
		Instructor:  input.Instructor,
		CategoryID:  input.CategoryID,
	}
	if err := s.DB.Create(&course).Error; err != nil {
		return nil, err
	}
	return s.FindByID(course.ID)
}

// UpdateCourseInput carries a partial patch; nil fields keep their
// current value.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Duration    *int
	Level       *string
	Price       *float64
	Published   *bool
	Instructor  *string
	CategoryID  *uint
}

// Update applies only the supplied fields. A changed categoryId is
// re-validated against the categories table before anything is written.
func (s *CourseService) Update(id uint, input UpdateCourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != course.CategoryID {
		var category models.Category
		if err := s.DB.First(&category, *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Level != nil {
		updates["level"] = *input.Level
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.Instructor != nil {
		updates["instructor"] = *input.Instructor
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&course).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(id)
}

// Delete removes a course and returns its prior state.
func (s *CourseService) Delete(id uint) (*models.Course, error) {
	course, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(&models.Course{}, id).Error; err != nil {
		return nil, err
	}
	return course, nil
}
