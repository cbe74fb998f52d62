// Package validate checks decoded request bodies and reports every invalid
// field at once.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxMoney is the smallest amount a NUMERIC(10,2) column cannot hold.
var MaxMoney = decimal.New(1, 8)

// FieldError names one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned when one or more request fields are invalid.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field builds an Errors value for a single field.
func Field(field, message string) *Errors {
	return &Errors{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator implements echo.Validator on top of go-playground/validator.
// Field names in errors are the json tag names.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("isodate", isoDate)
	return &Validator{v: v}
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

func isoDate(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return Date(f.String())
}

// Date reports whether s is a YYYY-MM-DD calendar date a DATE column can
// store. Year 0 parses but does not exist in the proleptic calendar.
func Date(s string) bool {
	t, err := time.Parse(time.DateOnly, s)
	return err == nil && t.Year() >= 1
}

// Money returns why d cannot be stored as a non-negative amount with at most
// two decimal places, or "" when it can.
func Money(d decimal.Decimal) string {
	switch {
	case d.IsNegative():
		return "must be at least 0"
	case !d.Equal(d.Truncate(2)):
		return "must have at most 2 decimal places"
	case d.Cmp(MaxMoney) >= 0:
		return "must be less than " + MaxMoney.String()
	}
	return ""
}

// Validate returns *Errors when i fails any rule.
func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Errors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
