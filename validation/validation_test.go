package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageOf(t *testing.T, form any) string {
	t.Helper()
	err := Struct(form)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	return verr.Message
}

func TestLoginForm(t *testing.T) {
	assert.Equal(t, "Please enter your email address", messageOf(t, LoginForm{}))
	assert.Equal(t, "Please enter a valid email address", messageOf(t, LoginForm{Email: "nope", Password: "x"}))
	assert.NoError(t, Struct(LoginForm{Email: "a@b.co", Password: "x"}))
}

func TestRegisterForm(t *testing.T) {
	form := RegisterForm{Name: "Ann", Email: "a@b.co", Password: "12345", Role: "patient", Gender: "female"}
	assert.Equal(t, "Password must be at least 6 characters long", messageOf(t, form))

	form.Password = "123456"
	require.NoError(t, Struct(form))

	form.Role = "admin"
	assert.Equal(t, "Please select patient or doctor", messageOf(t, form))

	form.Role = "doctor"
	form.Gender = ""
	assert.Equal(t, "Please select your gender", messageOf(t, &form))
}

func TestPasswordForm(t *testing.T) {
	form := PasswordForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret2"}
	assert.Equal(t, "New passwords do not match", messageOf(t, form))

	form.NewPassword, form.ConfirmPassword = "abc", "abc"
	assert.Equal(t, "New password must be at least 6 characters long", messageOf(t, form))

	form.NewPassword, form.ConfirmPassword = "secret1", "secret1"
	assert.NoError(t, Struct(form))
}

func TestBookingAndReviewForms(t *testing.T) {
	assert.Equal(t, "Please select a date", messageOf(t, BookingForm{Doctor: "d1"}))
	assert.Equal(t, "Please select a time slot", messageOf(t, BookingForm{Doctor: "d1", AppointmentDate: "2024-05-01"}))
	assert.Equal(t, "Please select a rating between 1 and 5", messageOf(t, ReviewForm{ReviewText: "ok", Rating: 6}))
	assert.Equal(t, "Invalid appointment status", messageOf(t, StatusForm{Status: "lost"}))
	assert.NoError(t, Struct(StatusForm{Status: "completed"}))
}

func TestDeletionForms(t *testing.T) {
	assert.Equal(t, "Please provide a reason for account deletion", messageOf(t, DeletionForm{}))
	assert.Equal(t, "Status must be approved or rejected", messageOf(t, DeletionDecisionForm{Status: "pending"}))
}
