package client

import (
	"regexp"
	"strings"
)

// Form validation as the signup view performs it, before any network call.
// Failures are keyed by field name so the view can render them inline.

var (
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	numberPattern = regexp.MustCompile(`\d`)
	commonPattern = regexp.MustCompile(`password|1234|qwerty|abcd`)
)

type SignupForm struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
}

// FieldErrors maps a form field to its inline error message.
type FieldErrors map[string]string

func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long."
	}
	if !upperPattern.MatchString(password) {
		return "Password must contain at least one uppercase letter."
	}
	if !lowerPattern.MatchString(password) {
		return "Password must contain at least one lowercase letter."
	}
	if !numberPattern.MatchString(password) {
		return "Password must contain at least one number."
	}
	if commonPattern.MatchString(strings.ToLower(password)) {
		return "Password should not contain common words or easily guessed patterns."
	}
	return ""
}

func ValidatePhoneNumber(phoneNumber string) string {
	if !phonePattern.MatchString(phoneNumber) {
		return "Phone number must be exactly 10 digits long."
	}
	return ""
}

func ValidateEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address."
	}
	return ""
}

// Validate returns every inline error for the form; an empty map means the
// form may be submitted.
func (f *SignupForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if msg := ValidatePassword(f.Password); msg != "" {
		errs["password"] = msg
	}
	if msg := ValidatePhoneNumber(f.PhoneNumber); msg != "" {
		errs["phoneNumber"] = msg
	}
	if msg := ValidateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}

	return errs
}
