package services

import (
	"errors"

	"gorm.io/gorm"

	"courseapi/config"
	"courseapi/models"
	"courseapi/utils"
)

type AuthService struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Register creates a user with a hashed password and issues a token.
// Uniqueness is pre-checked for friendly errors, but the unique indexes
// remain the final authority: a lost race surfaces as
// gorm.ErrDuplicatedKey and is reported as the same error kind.
func (s *AuthService) Register(input RegisterInput) (string, *models.User, error) {
	if _, err := s.FindByEmail(input.Email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.FindByUsername(input.Username); err == nil {
		return "", nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleInstructor
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent identical registration.
			if _, err := s.FindByUsername(input.Username); err == nil {
				return "", nil, ErrUsernameTaken
			}
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := utils.GenerateJWTToken(&user, s.Cfg)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login verifies credentials and issues a token. Unknown email and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(user, s.Cfg)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// FindByID resolves a token identity against the users table.
func (s *AuthService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername looks a user up by username.
func (s *AuthService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up by email.
func (s *AuthService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
