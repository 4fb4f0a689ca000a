package services

import "errors"

// Sentinel errors returned by the data-access layer. Controllers map
// these onto HTTP statuses; anything else is an internal error.
var (
	ErrEmailTaken         = errors.New("email is already in use")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNameTaken  = errors.New("a category with this name already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCourseNotFound     = errors.New("course not found")
)
