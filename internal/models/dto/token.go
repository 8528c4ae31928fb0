package dto

// TokenRequest is the identity payload posted to /jwt after the client has
// completed login with the external identity provider.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
