package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Provider bool   `json:"provider"`
}

// updateUserRequest carries optional profile changes. Changing the password
// requires the old one plus a matching confirmation; the cross-field rules
// live in the validate tags so the endpoint schema is self-describing.
type updateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"            validate:"omitempty,email"`
	AvatarURL       string `json:"avatar_url"       validate:"omitempty,url"`
	OldPassword     string `json:"old_password"     validate:"required_with=Password"`
	Password        string `json:"password"         validate:"omitempty,min=6,required_with=OldPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required_with=Password,eqfield=Password"`
}

// userResponse is the public view of an account; the password hash never
// leaves the service layer.
type userResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Provider  bool   `json:"provider"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}
