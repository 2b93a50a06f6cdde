package api

// LoginResponse returns the signed bearer token.
// swagger:model LoginResponse
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
