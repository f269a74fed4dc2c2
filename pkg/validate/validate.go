package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	phonePattern = regexp.MustCompile(`^[0-9+()\- ]{7,20}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// IsPhone accepts 7 to 20 characters of digits, spaces and +-() separators.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Struct validates v against its validate tags and returns the first failure as a readable error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return errors.New(message(verrs[0]))
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	case "numeric":
		return e.Field() + " must contain only digits"
	case "phone":
		return e.Field() + " must be a valid phone number"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
