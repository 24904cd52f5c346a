// Package validation checks user input before any network call. Form types
// carry gin binding tags so handlers get the same rules through ShouldBind,
// and a msg tag holding the user-facing message per rule.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"medicare/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Error is the first failed rule of a form.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	once     sync.Once
	validate *validator.Validate
)

// Engine returns the validator shared with gin's binding, with the custom
// rules registered.
func Engine() *validator.Validate {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
			v.SetTagName("binding")
		}
		_ = v.RegisterValidation("signuprole", validSignupRole)
		_ = v.RegisterValidation("appointmentstatus", validAppointmentStatus)
		validate = v
	})
	return validate
}

// validSignupRole accepts the roles open to self-registration.
func validSignupRole(fl validator.FieldLevel) bool {
	role, err := models.ParseRole(fl.Field().String())
	return err == nil && (role == models.RolePatient || role == models.RoleDoctor)
}

func validAppointmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.AppointmentPending, models.AppointmentApproved, models.AppointmentCancelled, models.AppointmentCompleted:
		return true
	}
	return false
}

// Struct validates form and returns an *Error for the first failed rule, or
// nil.
func Struct(form any) error {
	err := Engine().Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return Translate(form, fieldErrs[0])
}

// Translate turns a field error into the message declared on the form.
func Translate(form any, fe validator.FieldError) *Error {
	out := &Error{Field: fe.Field(), Rule: fe.Tag(), Message: fe.Field() + " is invalid"}

	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	f, ok := t.FieldByName(fe.StructField())
	if !ok {
		return out
	}
	for _, pair := range strings.Split(f.Tag.Get("msg"), ";") {
		rule, message, found := strings.Cut(pair, "=")
		if found && (rule == fe.Tag() || rule == "*") {
			out.Message = message
			if rule == fe.Tag() {
				break
			}
		}
	}
	return out
}

// FromBindError converts an error from gin's ShouldBind into a user-facing
// message.
func FromBindError(form any, err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return Translate(form, fieldErrs[0]).Message
	}
	return "Invalid request body"
}
