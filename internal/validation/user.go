// Package validation provides input validation for user-supplied fields.
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	minLoginLen    = 4
	maxLoginLen    = 20
	minNameLen     = 2
	maxNameLen     = 35
	minPasswordLen = 8
	maxPasswordLen = 128
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateLogin checks that a login meets the account naming rules.
func ValidateLogin(login string) error {
	if len(login) < minLoginLen {
		return fmt.Errorf("login must be at least %d characters long", minLoginLen)
	}
	if len(login) > maxLoginLen {
		return fmt.Errorf("login must not exceed %d characters", maxLoginLen)
	}
	if !loginPattern.MatchString(login) {
		return fmt.Errorf("login can only contain letters, numbers, dots, underscores, and hyphens")
	}
	return nil
}

// ValidateName checks a first or last name. Only letters and spaces are
// allowed, matching the profile field rules.
func ValidateName(field, name string) error {
	if len(name) < minNameLen {
		return fmt.Errorf("%s must be at least %d characters long", field, minNameLen)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxNameLen)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return fmt.Errorf("%s can only contain letters and spaces", field)
		}
	}
	return nil
}

// ValidatePassword checks the password length bounds. Strength is enforced by
// length only; the stored form is always a bcrypt hash.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}
