// Package validation decodes request bodies into typed inputs and checks
// them against their struct tags before any handler logic runs.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rohits-web03/myspace/internal/apperr"
)

var strictEmail = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

var validate = newValidator()

// Normalizer is implemented by inputs that trim or lowercase themselves
// before tags are checked.
type Normalizer interface {
	Normalize()
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("strictemail", func(fl validator.FieldLevel) bool {
		return strictEmail.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, layout := range DateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Decode reads one JSON document into dst, rejecting unknown fields. It
// does not validate; see Struct.
func Decode(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	return nil
}

// Struct normalizes v when it implements Normalizer and validates it. The
// returned error is an *apperr.Error of kind Validation listing every
// failing field.
func Struct(v any) error {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Unexpected(err)
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldPath(fe)
		fields = append(fields, apperr.FieldError{Field: name, Message: message(name, fe)})
	}
	return apperr.Validation(fields...)
}

// fieldPath drops the root struct name: "ContactInput.email.work" -> "email.work".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "strictemail":
		return "Invalid email"
	case "uri":
		return fmt.Sprintf("%s must be a valid URI", field)
	case "date":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD or RFC 3339)", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperr.Validation(apperr.FieldError{Field: "body", Message: "request body is required"})
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperr.Validation(apperr.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String()),
		})
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperr.Validation(apperr.FieldError{Field: name, Message: fmt.Sprintf("%s is not allowed", name)})
	default:
		return apperr.Validation(apperr.FieldError{Field: "body", Message: "request body is not valid JSON"})
	}
}
