package api

// LoginRequest carries the login credentials. Email doubles as the login
// identifier.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
