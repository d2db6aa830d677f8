package contact

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "contact: invalid submission (" + strings.Join(parts, "; ") + ")"
}

var labels = map[string]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldSubject: "Subject",
	FieldMessage: "Message",
}

const invalidEmailMessage = "Please enter a valid email address"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("dotted_domain", func(fl validator.FieldLevel) bool {
		return hasDottedDomain(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// hasDottedDomain reports whether the part after the last "@" has at
// least two labels and none of them is empty.
func hasDottedDomain(addr string) bool {
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	parts := strings.Split(addr[at+1:], ".")
	if len(parts) < 2 {
		return false
	}
	for _, l := range parts {
		if l == "" {
			return false
		}
	}
	return true
}

// Normalize trims surrounding whitespace from every field.
func Normalize(in Input) Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
}

// Validate normalizes in and checks it. On success it returns the trimmed
// input. On failure the error is a FieldErrors.
func Validate(in Input) (Input, error) {
	in = Normalize(in)

	err := validate.Struct(in)
	if err == nil {
		return in, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return in, fmt.Errorf("contact: validating submission: %w", err)
	}

	fe := make(FieldErrors, len(verrs))
	for _, v := range verrs {
		fe[v.Field()] = message(v.Field(), v.Tag())
	}
	return in, fe
}

// CheckField validates a single field value and returns its message, or ""
// when the value is acceptable.
func CheckField(field, value string) string {
	in, ok := Input{}.With(field, value)
	if !ok {
		return ""
	}
	_, err := Validate(in)
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe[field]
	}
	return ""
}

func message(field, tag string) string {
	label := labels[field]
	switch tag {
	case "required":
		return label + " is required"
	case "max":
		return label + " is too long"
	case "email", "dotted_domain":
		return invalidEmailMessage
	}
	return label + " is invalid"
}
