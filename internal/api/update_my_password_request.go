package api

// UpdateMyPasswordRequest changes the caller's own password.
// swagger:model UpdateMyPasswordRequest
type UpdateMyPasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" validate:"required" example:"OldSecret123!"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required" example:"NewSecret456!"`
}
