package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired        = "is required"
	ErrNotBlank        = "must not be blank"
	ErrEmail           = "must be a valid email address"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinValue        = "must be at least %s"
	ErrMaxValue        = "must be at most %s"
	ErrMinItems        = "must contain at least %s item(s)"
	ErrMaxItems        = "must contain at most %s item(s)"
	ErrUnique          = "must not contain duplicate values"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
	ErrDefaultInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("notblank", validateNotBlank)

	return validator
}

// jsonFieldName reports fields by their JSON names so that error paths match
// the request body, e.g. tickets[0].showSession.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// FieldPath returns the failing field relative to the validated struct.
func FieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return err.Field()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "notblank":
		return ErrNotBlank
	case "email":
		return ErrEmail
	case "unique":
		return ErrUnique
	case "password":
		return ErrInvalidPassword
	case "min":
		return boundMessage(err, ErrMinLength, ErrMinItems, ErrMinValue)
	case "max":
		return boundMessage(err, ErrMaxLength, ErrMaxItems, ErrMaxValue)
	default:
		return ErrDefaultInvalid
	}
}

func boundMessage(err validator.FieldError, length, items, value string) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf(length, err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(items, err.Param())
	default:
		return fmt.Sprintf(value, err.Param())
	}
}
