package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for collection and product fields.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 5_000
	maxCategoryLen    = 100
)

// validateCollection checks collection inputs and returns the first error found.
func validateCollection(title, category, description string) string {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(category) == "" {
		return "Title or category is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(category) > maxCategoryLen {
		return "Category is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 5,000 characters)."
	}
	return ""
}

// validateProduct checks product create inputs and returns the first error found.
func validateProduct(name, description string) string {
	if strings.TrimSpace(name) == "" {
		return "Product name is required."
	}
	return validateLengths(name, description)
}

// validateLengths checks only the size limits, shared by create and update.
func validateLengths(name, description string) string {
	if utf8.RuneCountInString(name) > maxTitleLen {
		return "Product name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 5,000 characters)."
	}
	return ""
}
