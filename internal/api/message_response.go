package api

// MessageResponse is a plain informational message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"user deleted"`
}
