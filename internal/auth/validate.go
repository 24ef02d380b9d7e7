package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/devconnector/auth-api/internal/httputil"
)

// validate is shared across requests; the validator is safe for concurrent
// use once constructed.
var validate = validator.New()

// RegisterInput is the expected shape of a registration request body.
// Unknown keys are ignored at decode time; missing or malformed fields are
// reported here, before any I/O happens.
type RegisterInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=30"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

// LoginInput is the expected shape of a login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidateRegister checks a registration input and returns field-keyed
// messages. It never returns an error for user input; an empty map means the
// input is valid.
func ValidateRegister(in RegisterInput) (httputil.FieldErrors, bool) {
	errs := translate(validate.Struct(in), registerMessages)
	return errs, len(errs) == 0
}

// ValidateLogin checks a login input the same way.
func ValidateLogin(in LoginInput) (httputil.FieldErrors, bool) {
	errs := translate(validate.Struct(in), loginMessages)
	return errs, len(errs) == 0
}

// fieldMessage keys a message by struct field and failed tag.
type fieldMessage struct {
	field string
	tag   string
}

var registerMessages = map[fieldMessage]string{
	{"Name", "required"}:      "Name field is required",
	{"Email", "required"}:     "Email field is required",
	{"Email", "email"}:        "Email is invalid",
	{"Password", "required"}:  "Password field is required",
	{"Password", "min"}:       "Password must be at least 6 characters",
	{"Password", "max"}:       "Password must be at most 30 characters",
	{"Password2", "required"}: "Confirm Password field is required",
	{"Password2", "eqfield"}:  "Passwords must match",
}

var loginMessages = map[fieldMessage]string{
	{"Email", "required"}:    "Email field is required",
	{"Email", "email"}:       "Email is invalid",
	{"Password", "required"}: "Password field is required",
}

// jsonFieldNames maps struct field names to the wire names clients key
// their inline form errors on.
var jsonFieldNames = map[string]string{
	"Name":      "name",
	"Email":     "email",
	"Password":  "password",
	"Password2": "password2",
}

func translate(err error, messages map[fieldMessage]string) httputil.FieldErrors {
	if err == nil {
		return nil
	}

	errs := make(httputil.FieldErrors)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-validation failure (bad tag programming error); surface it
		// on a generic key rather than panicking mid-request.
		errs["error"] = "invalid input"
		return errs
	}

	for _, fe := range verrs {
		field := jsonFieldNames[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		// First failure per field wins, matching per-field inline display
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[fieldMessage{fe.StructField(), fe.Tag()}]; ok {
			errs[field] = msg
		} else {
			errs[field] = "Invalid value"
		}
	}

	return errs
}
