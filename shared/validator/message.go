package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gt":          "{field} must be greater than {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"uuid":        "{field} must be a valid UUID",
	"hexcolor":    "{field} must be a hex color",
	"clock":       "{field} must be a time in HH:MM format",
	"isodate":     "{field} must be a date in YYYY-MM-DD format",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must be at most {param} MB",
}

// message returns the offending field and a readable description of the
// first rule that has a template, falling back to the raw validator output.
func message(err error) (string, string) {
	var failed val.ValidationErrors
	if !errors.As(err, &failed) || len(failed) == 0 {
		return "", err.Error()
	}

	for _, fe := range failed {
		tmpl, ok := messages[fe.Tag()]
		if !ok {
			continue
		}

		return fe.Field(), strings.NewReplacer("{field}", fe.Field(), "{param}", fe.Param()).Replace(tmpl)
	}

	return failed[0].Field(), failed.Error()
}
