package dto

// LoginRequest is the form-encoded login payload.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}
