package services

import (
	"strings"
	"unicode/utf8"
)

const (
	frontMinLen    = 3
	frontMaxLen    = 500
	backMaxLen     = 1000
	categoryMaxLen = 50
)

// ValidateFlashcard checks the user-submitted fields and returns the
// violations as human-readable messages, empty if the input is
// acceptable. All fields are checked independently, front before back
// before category, with at most one message per field.
func ValidateFlashcard(front, back, category string) []string {
	var errs []string

	front = strings.TrimSpace(front)
	switch {
	case front == "":
		errs = append(errs, "Question/Term is required")
	case utf8.RuneCountInString(front) < frontMinLen:
		errs = append(errs, "Question/Term must be at least 3 characters")
	case utf8.RuneCountInString(front) > frontMaxLen:
		errs = append(errs, "Question/Term cannot exceed 500 characters")
	}

	back = strings.TrimSpace(back)
	switch {
	case back == "":
		errs = append(errs, "Answer/Definition is required")
	case utf8.RuneCountInString(back) > backMaxLen:
		errs = append(errs, "Answer/Definition cannot exceed 1000 characters")
	}

	category = strings.TrimSpace(category)
	switch {
	case category == "":
		errs = append(errs, "Category is required")
	case utf8.RuneCountInString(category) > categoryMaxLen:
		errs = append(errs, "Category cannot exceed 50 characters")
	}

	return errs
}
