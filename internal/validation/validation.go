// Package validation holds the field rules shared by the storefront forms
// (registration, login, contact, newsletter) and an error type that
// collects one message per offending field.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/techmarket/internal/common"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 8
	MinMessageLength  = 10
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Latin letters with single spaces, hyphens or apostrophes between them.
	nameRe = regexp.MustCompile(`^[A-Za-z]+(?:[ '\-][A-Za-z]+)*$`)

	phoneRe      = regexp.MustCompile(`^\+?[0-9 ()\-.]+$`)
	letterRe     = regexp.MustCompile(`[A-Za-z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	phoneDigitRe = regexp.MustCompile(`[0-9]`)
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is a list of field errors. It satisfies errors.Is(err,
// common.ErrValidation).
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrValidation
}

// Message returns the message recorded for field, if any.
func (e Errors) Message(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Validator accumulates field errors. The first failure per field wins.
type Validator struct {
	errs Errors
}

func (v *Validator) Check(ok bool, field, message string) {
	if ok {
		return
	}
	if _, seen := v.errs.Message(field); seen {
		return
	}
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Err returns nil when no check failed, otherwise the collected Errors.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func IsName(s string) bool {
	s = strings.TrimSpace(s)
	return utf8.RuneCountInString(s) >= MinNameLength && nameRe.MatchString(s)
}

// IsStrongPassword requires MinPasswordLength characters including at
// least one letter and one digit.
func IsStrongPassword(p []byte) bool {
	return utf8.RuneCount(p) >= MinPasswordLength && letterRe.Match(p) && digitRe.Match(p)
}

// IsPhone accepts an empty value, otherwise an optional leading '+' and
// 7-15 digits with spaces, dots, dashes or parentheses as separators.
func IsPhone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if !phoneRe.MatchString(s) || strings.LastIndex(s, "+") > 0 {
		return false
	}
	n := len(phoneDigitRe.FindAllString(s, -1))
	return n >= 7 && n <= 15
}

func IsMessage(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinMessageLength
}

func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email checks a single email field: required, then format.
func Email(v *Validator, field, value string) {
	v.Check(Required(value), field, "Email is required.")
	v.Check(IsEmail(value), field, "Please enter a valid email address.")
}

// Name checks a person name field labelled label.
func Name(v *Validator, field, label, value string) {
	v.Check(Required(value), field, label+" is required.")
	v.Check(utf8.RuneCountInString(strings.TrimSpace(value)) >= MinNameLength, field,
		label+" must be at least 2 characters long.")
	v.Check(IsName(value), field, label+" may contain only letters, spaces, hyphens and apostrophes.")
}

// Contact validates the contact form.
func Contact(name, email, message string) error {
	var v Validator
	Name(&v, "name", "Name", name)
	Email(&v, "email", email)
	v.Check(Required(message), "message", "Message is required.")
	v.Check(IsMessage(message), "message", "Message must be at least 10 characters long.")
	return v.Err()
}

// Subscription validates the newsletter form.
func Subscription(name, email string) error {
	var v Validator
	v.Check(Required(name), "name", "Name is required.")
	Email(&v, "email", email)
	return v.Err()
}
