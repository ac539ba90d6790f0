package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxSearchTermLength bounds free-text search input. Any shorter term is
// accepted as-is; one that appears in no field simply matches nothing.
const MaxSearchTermLength = 1024

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("search_term", SearchTerm)
}

// SearchTerm accepts any text up to MaxSearchTermLength runes.
func SearchTerm(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) <= MaxSearchTermLength
}
