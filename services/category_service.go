package services

import (
	"errors"

	"gorm.io/gorm"

	"courseapi/models"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

// FindAll returns every category, newest first.
func (s *CategoryService) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("created_at DESC, id DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID returns a category without its courses.
func (s *CategoryService) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindWithCourses returns a category together with all its courses,
// published or not. Unpublished courses are deliberately included here
// so owners can see everything under a category; the public listing is
// CourseService.FindAllPublished.
func (s *CategoryService) FindWithCourses(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.Preload("Courses").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

// Create inserts a category, enforcing name uniqueness.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	var existing models.Category
	if err := s.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return nil, ErrCategoryNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}
	return &category, nil
}
