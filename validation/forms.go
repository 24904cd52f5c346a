package validation

import "medicare/models"

type LoginForm struct {
	Email    string `json:"email" form:"email" binding:"required,email" msg:"required=Please enter your email address;email=Please enter a valid email address"`
	Password string `json:"password" form:"password" binding:"required" msg:"required=Please enter your password"`
}

func (f LoginForm) Credentials() models.Credentials {
	return models.Credentials{Email: f.Email, Password: f.Password}
}

type RegisterForm struct {
	Name           string `json:"name" form:"name" binding:"required" msg:"required=Please enter your name"`
	Email          string `json:"email" form:"email" binding:"required,email" msg:"required=Please enter your email address;email=Please enter a valid email address"`
	Password       string `json:"password" form:"password" binding:"required,min=6" msg:"*=Password must be at least 6 characters long"`
	Role           string `json:"role" form:"role" binding:"required,signuprole" msg:"*=Please select patient or doctor"`
	Gender         string `json:"gender" form:"gender" binding:"required" msg:"required=Please select your gender"`
	Specialization string `json:"specialization" form:"specialization"`
}

func (f RegisterForm) Data() models.RegistrationData {
	return models.RegistrationData{
		Name:           f.Name,
		Email:          f.Email,
		Password:       f.Password,
		Role:           models.Role(f.Role),
		Gender:         f.Gender,
		Specialization: f.Specialization,
	}
}

type PasswordForm struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required" msg:"required=Please enter your current password"`
	NewPassword     string `json:"newPassword" form:"newPassword" binding:"required,min=6" msg:"*=New password must be at least 6 characters long"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"eqfield=NewPassword" msg:"eqfield=New passwords do not match"`
}

func (f PasswordForm) Update() models.PasswordUpdate {
	return models.PasswordUpdate{
		CurrentPassword: f.CurrentPassword,
		NewPassword:     f.NewPassword,
		ConfirmPassword: f.ConfirmPassword,
	}
}

type BookingForm struct {
	Doctor          string `json:"doctor" form:"doctor" binding:"required" msg:"required=Doctor information is missing"`
	AppointmentDate string `json:"appointmentDate" form:"appointmentDate" binding:"required" msg:"required=Please select a date"`
	TimeSlot        string `json:"timeSlot" form:"timeSlot" binding:"required" msg:"required=Please select a time slot"`
	Reason          string `json:"reason" form:"reason"`
}

func (f BookingForm) Request() models.AppointmentRequest {
	return models.AppointmentRequest{
		Doctor:          f.Doctor,
		AppointmentDate: f.AppointmentDate,
		TimeSlot:        f.TimeSlot,
		Reason:          f.Reason,
	}
}

type ReviewForm struct {
	Doctor     string `json:"doctor" form:"doctor"`
	ReviewText string `json:"reviewText" form:"reviewText" binding:"required" msg:"required=Please write a review"`
	Rating     int    `json:"rating" form:"rating" binding:"required,min=1,max=5" msg:"*=Please select a rating between 1 and 5"`
}

func (f ReviewForm) Request() models.ReviewRequest {
	return models.ReviewRequest{Doctor: f.Doctor, ReviewText: f.ReviewText, Rating: f.Rating}
}

type StatusForm struct {
	Status string `json:"status" form:"status" binding:"required,appointmentstatus" msg:"*=Invalid appointment status"`
}

type DoctorStatusForm struct {
	Status string `json:"status" form:"status" binding:"required,oneof=pending approved cancelled" msg:"*=Invalid doctor status"`
}

type DeletionForm struct {
	Reason string `json:"reason" form:"reason" binding:"required" msg:"required=Please provide a reason for account deletion"`
}

type DeletionDecisionForm struct {
	Status     string `json:"status" form:"status" binding:"required,oneof=approved rejected" msg:"*=Status must be approved or rejected"`
	AdminNotes string `json:"adminNotes" form:"adminNotes"`
}

type TimeSlotForm struct {
	Day       string `json:"day" form:"day" binding:"required" msg:"required=Please fill all time slot fields"`
	StartTime string `json:"startTime" form:"startTime" binding:"required" msg:"required=Please fill all time slot fields"`
	EndTime   string `json:"endTime" form:"endTime" binding:"required" msg:"required=Please fill all time slot fields"`
}
