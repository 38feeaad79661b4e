package request

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=60"`
	Username  string `json:"username" validate:"required,max=60"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=25"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=25"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=60"`
	Username  *string `json:"username,omitempty" validate:"omitempty,max=60"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=25"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=25"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateProfileRequest is the /users/me PATCH body. There is no role field:
// users cannot raise their own role, the server keeps the current one.
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=60"`
	Username  *string `json:"username,omitempty" validate:"omitempty,max=60"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=25"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=25"`
	Bio       *string `json:"bio,omitempty"`
}
