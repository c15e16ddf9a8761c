package dto

// AddUserRequest is the form-encoded payload for creating a credential.
type AddUserRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// DeleteUserRequest identifies the credential to remove.
type DeleteUserRequest struct {
	Username string `form:"username"`
}

// UpdateRoleRequest changes a credential's role.
type UpdateRoleRequest struct {
	Username string `form:"username"`
	Role     string `form:"role"`
}
