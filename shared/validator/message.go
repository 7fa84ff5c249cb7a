package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"email":    "{field} must be a valid email address",
		"url":      "{field} must be a valid URL",
		"datetime": "{field} must be a valid date in {param} format",
	}
)

// messages renders one human-readable line per violated field.
func messages(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		errStr := templates[valErr.Tag()]
		if errStr == "" {
			details = append(details, valErr.Error())

			continue
		}

		errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
		errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

		details = append(details, errStr)
	}

	return details
}
