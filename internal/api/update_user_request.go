package api

// UpdateUserRequest rewrites name and email. Partial updates are not
// supported; both fields are required.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name  string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
}
