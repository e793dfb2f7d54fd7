package session

import (
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/validation"
)

// Registration is the sign-up form.
type Registration struct {
	Email     string
	Password  []byte
	FirstName string
	LastName  string
	Phone     string
}

// Name joins first and last name with a single space.
func (r Registration) Name() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// Validate returns validation.Errors describing every invalid field.
func (r Registration) Validate() error {
	var v validation.Validator
	validation.Name(&v, "firstName", "First name", r.FirstName)
	validation.Name(&v, "lastName", "Last name", r.LastName)
	validation.Email(&v, "email", r.Email)
	v.Check(len(r.Password) > 0, "password", "Password is required.")
	v.Check(validation.IsStrongPassword(r.Password), "password",
		"Password must be at least 8 characters and contain a letter and a digit.")
	v.Check(validation.IsPhone(r.Phone), "phone", "Please enter a valid phone number.")
	return v.Err()
}
