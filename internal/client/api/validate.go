package api

import (
	"regexp"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validate checks the sign-up form the same way the app does before it ever
// talks to the backend. The first failing rule wins.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return &ValidationError{Field: "first_name", Message: "enter your first name"}
	}
	if strings.TrimSpace(r.LastName) == "" {
		return &ValidationError{Field: "last_name", Message: "enter your last name"}
	}
	if !emailRe.MatchString(r.Email) {
		return &ValidationError{Field: "email", Message: "invalid email"}
	}
	if !mobileRe.MatchString(r.Mobile) {
		return &ValidationError{Field: "mobile", Message: "mobile number must be 10 digits"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	return nil
}
