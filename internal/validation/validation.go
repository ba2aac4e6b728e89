// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"devconnect/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// ValidateEmail checks email syntax.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("please include a valid email")
	}
	return nil
}

// ValidatePassword checks minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("please enter a password with %d or more characters", MinPasswordLength)
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// Required reports a field error when value is blank.
func Required(field, value, msg string) *models.FieldError {
	if strings.TrimSpace(value) == "" {
		return &models.FieldError{Field: field, Msg: msg}
	}
	return nil
}

// RegisterInput is the registration request payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegister returns the per-field error list for a registration
// request, empty when the request is valid.
func ValidateRegister(in RegisterInput) []models.FieldError {
	var errs []models.FieldError
	if fe := Required("name", in.Name, "Name is required"); fe != nil {
		errs = append(errs, *fe)
	}
	if err := ValidateEmail(in.Email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Msg: "Please include a valid email"})
	}
	if err := ValidatePassword(in.Password); err != nil {
		errs = append(errs, models.FieldError{Field: "password", Msg: "Please enter a password with 6 or more characters"})
	}
	return errs
}

// LoginInput is the login request payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin returns the per-field error list for a login request.
func ValidateLogin(in LoginInput) []models.FieldError {
	var errs []models.FieldError
	if err := ValidateEmail(in.Email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Msg: "Please include a valid email"})
	}
	if fe := Required("password", in.Password, "Password is required"); fe != nil {
		errs = append(errs, *fe)
	}
	return errs
}

// SplitSkills splits a comma-separated skills string into a trimmed,
// ordered list, dropping empty entries.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
