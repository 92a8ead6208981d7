package inquiry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email address"
	MsgPhone    = "Please enter a valid phone number"
	MsgName     = "Name must contain only letters, spaces, hyphens, and apostrophes"
	MsgGuests   = "Please enter a valid number of guests (1-50)"

	MinGuests = 1
	MaxGuests = 50
)

const (
	tagEmail  = "inquiry_email"
	tagPhone  = "inquiry_phone"
	tagName   = "person_name"
	tagGuests = "guest_count"
)

var (
	emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_\x60{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	phoneRegex = regexp.MustCompile(`^\+?[\d\s()\-]{10,20}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}\s'-]{2,100}$`)
)

// formatChecks runs in this order; a field only gets the first message that applies.
var formatChecks = []struct {
	field string
	tag   string
	msg   string
}{
	{FieldEmail, tagEmail, MsgEmail},
	{FieldPhone, tagPhone, MsgPhone},
	{FieldName, tagName, MsgName},
	{FieldGuests, tagGuests, MsgGuests},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, tagEmail, func(fl validator.FieldLevel) bool { return isEmail(fl.Field().String()) })
	mustRegister(v, tagPhone, func(fl validator.FieldLevel) bool { return isPhone(fl.Field().String()) })
	mustRegister(v, tagName, func(fl validator.FieldLevel) bool { return isName(fl.Field().String()) })
	mustRegister(v, tagGuests, func(fl validator.FieldLevel) bool { return isGuestCount(fl.Field().String()) })
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func isEmail(s string) bool {
	return s != "" && len(s) <= MaxLengths[FieldEmail] && emailRegex.MatchString(s)
}

func isPhone(s string) bool {
	return s == "" || phoneRegex.MatchString(s)
}

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

func isGuestCount(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= MinGuests && n <= MaxGuests
}

func IsValidEmail(email string) bool {
	return validate.Var(email, tagEmail) == nil
}

// IsValidPhone treats an empty phone as valid; the field is optional.
func IsValidPhone(phone string) bool {
	return validate.Var(phone, tagPhone) == nil
}

func IsValidName(name string) bool {
	return validate.Var(name, tagName) == nil
}

func IsValidGuestCount(guests string) bool {
	return validate.Var(guests, tagGuests) == nil
}

// ValidateLength reports whether value fits the field's limit. Unknown fields have no limit.
func ValidateLength(field, value string) bool {
	limit, ok := MaxLengths[field]
	if !ok {
		return true
	}
	return validate.Var(value, "max="+strconv.Itoa(limit)) == nil
}

func LengthMessage(field string) string {
	return fmt.Sprintf("This field must be %d characters or less", MaxLengths[field])
}

type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// ValidateForm checks raw (unsanitized) values: required fields, then formats of
// non-empty fields, then lengths. The first error recorded for a field wins.
func ValidateForm(data map[string]string, required []string) ValidationResult {
	errors := make(map[string]string)
	record := func(field, msg string) {
		if _, exists := errors[field]; !exists {
			errors[field] = msg
		}
	}

	for _, field := range required {
		if strings.TrimSpace(data[field]) == "" {
			record(field, MsgRequired)
		}
	}

	for _, check := range formatChecks {
		value, present := data[check.field]
		if !present || value == "" {
			continue
		}
		if validate.Var(value, check.tag) != nil {
			record(check.field, check.msg)
		}
	}

	for field, value := range data {
		if !ValidateLength(field, value) {
			record(field, LengthMessage(field))
		}
	}

	return ValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}
