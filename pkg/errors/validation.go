package errors

import (
	"strings"
	"unicode"
)

// ValidateObjectName validates a plan object name for use in SVG source
// labels and log output.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateObjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidObject, "object name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidObject, "object name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidObject, "object name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePlanPath validates a plan file path before reading it.
// It prevents path traversal out of the working tree and rejects
// obviously malformed paths.
func ValidatePlanPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "plan path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "plan path too long (max 500 characters)")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "plan path contains null byte")
	}

	return nil
}
