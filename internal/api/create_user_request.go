package api

// CreateUserRequest creates a new account. Role is optional at the API
// boundary and defaults to "user".
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=user admin" example:"user"`
}
