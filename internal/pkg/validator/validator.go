package validator

import (
	"strings"
	"time"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// First returns the first recorded violation. Validation is fail-fast, so in
// practice there is never more than one.
func (v ValidationErrors) First() ValidationError {
	if len(v) == 0 {
		return ValidationError{}
	}
	return v[0]
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MaxLen reports whether s fits within max characters.
func MaxLen(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
