package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePatternName validates a named pattern reference (as used with
// --pattern and BINCLOCK_PATTERN) before it is turned into a file path.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Only letters, digits, dash and underscore
//
// Anything else could escape the patterns directory.
func ValidatePatternName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "pattern name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "pattern name too long (max 64 characters)")
	}

	if !patternNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid pattern name: %q", name)
	}

	return nil
}

var patternNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidatePath validates a pattern file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormats checks every requested output format against the allowed set.
// Format names are compared case-insensitively after trimming whitespace.
func ValidateFormats(formats []string, allowed ...string) error {
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		ok := false
		for _, a := range allowed {
			if f == a {
				ok = true
				break
			}
		}
		if !ok {
			return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}
