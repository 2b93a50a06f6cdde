package api

// UserResponse is the public user representation. The password hash is
// never serialized.
// swagger:model UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}
