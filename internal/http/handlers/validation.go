package handlers

import (
	"strconv"
	"strings"
)

type EntryValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateEntry checks the add-exercise form fields. The duration value is
// returned parsed; it is only meaningful when no errors are reported.
func validateEntry(userID, description, duration string) (int, []EntryValidationError) {
	errs := []EntryValidationError{}
	if strings.TrimSpace(userID) == "" {
		errs = append(errs, EntryValidationError{Field: "userId", Description: "userId is required"})
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, EntryValidationError{Field: "description", Description: "description is required"})
	}

	if strings.TrimSpace(duration) == "" {
		errs = append(errs, EntryValidationError{Field: "duration", Description: "duration is required"})
		return 0, errs
	}
	d, err := strconv.Atoi(duration)
	if err != nil {
		errs = append(errs, EntryValidationError{Field: "duration", Description: "duration must be an integer"})
		return 0, errs
	}
	if d <= 0 {
		errs = append(errs, EntryValidationError{Field: "duration", Description: "duration must be greater than zero"})
	}
	return d, errs
}
