package handlers

// HandlerBundle groups the console handlers.
type HandlerBundle struct {
	Auth          *AuthHandler
	Doctors       *DoctorHandler
	Profile       *ProfileHandler
	DoctorProfile *DoctorProfileHandler
	Admin         *AdminHandler
	Notifications *NotificationHandler
}
