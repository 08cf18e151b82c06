package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank fails on strings that are empty after trimming, so a phone
// field of "   " does not sneak past `required`.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// NoDupes validates that a []string holds no repeated values. Used for
// the requested-services list, which is an ordered set.
func NoDupes(fl validator.FieldLevel) bool {
	field := fl.Field()
	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		value := field.Index(i).String()
		if _, ok := seen[value]; ok {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}
