package utils

import (
	"errors"
	"regexp"
)

// Metro route and stop IDs are numeric, but route variants and run IDs use
// letters, underscores and dots.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const maxIDLength = 100

// ValidateID validates that an ID is safe to place into an upstream path.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > maxIDLength {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}
