package api

// ErrorResponse is the canonical error envelope for all API errors.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"user not found"`
}
