package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalid = errors.New("invalid form")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form/json name ("fecha", "monto") rather than the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Struct validates s against its `validate` tags. Failures are returned as a single
// error wrapping ErrInvalid that lists every offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating form: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es obligatorio"
	case "datetime":
		return fe.Field() + " debe tener formato AAAA-MM-DD"
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s no es válido (%s)", fe.Field(), fe.Tag())
}
