package validators

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseapi/models"
	"courseapi/utils"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register validates the registration payload.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		if len(reqData.Username) < 3 {
			errors["username"] = "Username must be at least 3 characters long"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "A valid email is required"
		}

		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long"
		}

		if reqData.Role != "" && reqData.Role != models.RoleInstructor && reqData.Role != models.RoleAdmin {
			errors["role"] = "Role must be \"instructor\" or \"admin\""
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the login payload.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "A valid email is required"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required"
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
