package api

// ProtectedResponse echoes the authenticated subject.
// swagger:model ProtectedResponse
type ProtectedResponse struct {
	LoggedInAs string `json:"logged_in_as" example:"1"`
}
