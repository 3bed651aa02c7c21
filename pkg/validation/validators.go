package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the format a native date picker submits.
const DateLayout = "2006-01-02"

// New returns a validator with the custom tags registered and field names
// reported by their JSON name.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	v.RegisterTagNameFunc(jsonFieldName)
}

// NotBlank fails on strings that are empty after trimming whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
