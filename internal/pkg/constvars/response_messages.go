package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages, shown verbatim in the auth view
	RegisterSuccessMessage = "Registration successful! You can now log in."
	LoginSuccessMessage    = "Login successful!"
	LogoutSuccessMessage   = "Logged out successfully."
	GetSessionMessage      = "session fetched successfully"

	// Consultation messages
	ConsultationSuccessMessage = "consultation completed"
)

const (
	ViewAuth         = "auth"
	ViewConsultation = "consultation"
)

const (
	AuthActionLogin    = "Login"
	AuthActionRegister = "Register"
)
