package shortlink

import (
	"fmt"
	"net/url"
)

const (
	minCustomCodeLength = 3
	maxCustomCodeLength = 20
)

// ValidateOriginalURL checks that the input is a well-formed absolute URL.
func ValidateOriginalURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: originalUrl is required", ErrInvalidInput)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: originalUrl is not a valid URL", ErrInvalidInput)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: originalUrl scheme must be http or https", ErrInvalidInput)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: originalUrl must have a host", ErrInvalidInput)
	}

	return nil
}

// ValidateCustomCode checks the length bounds and character set of a
// caller-supplied short code.
func ValidateCustomCode(code string) error {
	if len(code) < minCustomCodeLength {
		return fmt.Errorf("%w: customCode must be at least %d characters", ErrInvalidInput, minCustomCodeLength)
	}

	if len(code) > maxCustomCodeLength {
		return fmt.Errorf("%w: customCode must be at most %d characters", ErrInvalidInput, maxCustomCodeLength)
	}

	for _, r := range code {
		if !isCodeRune(r) {
			return fmt.Errorf("%w: customCode may only contain letters, digits, hyphens and underscores", ErrInvalidInput)
		}
	}

	return nil
}

func isCodeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}

	return false
}
