package request

// SignupRequest starts the email confirmation flow. Username is accepted for
// API compatibility but the server derives the real username from the email.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email,max=60"`
	Username  string `json:"username,omitempty" validate:"omitempty,max=60"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=25"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=25"`
	Bio       string `json:"bio,omitempty"`
}

type TokenRequest struct {
	Email            string `json:"email" validate:"required,email"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}
