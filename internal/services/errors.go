package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrForbidden is returned when the actor may not touch the record
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned by Authenticate for any mismatch
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSession is returned for missing, expired or forged session tokens
	ErrInvalidSession = errors.New("invalid session")
	// ErrInvalidStatus is returned for decisions other than accepted or rejected
	ErrInvalidStatus = errors.New("invalid status")
	// ErrTooLarge is returned for uploads over the size limit
	ErrTooLarge = errors.New("upload exceeds size limit")
	// ErrUnsupportedType is returned for uploads outside the allow-list
	ErrUnsupportedType = errors.New("unsupported upload type")
)

// ValidationError lists invalid input fields by their JSON name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

// invalid builds a ValidationError for a single field
func invalid(field, reason string) error {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		return periodPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks struct tags and converts failures into a ValidationError
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = describe(fe)
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid identifier"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "period":
		return "must be a month in YYYY-MM form"
	case "uppercase":
		return "must be upper case"
	}
	return "is invalid"
}
