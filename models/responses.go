package models

// TokenResponse is the body returned by POST /api/token on successful
// authentication. TokenType is always "bearer".
type TokenResponse struct {
	// AccessToken is the compact JWS serialization of the issued token.
	AccessToken string `json:"access_token"`

	// TokenType identifies the authorization scheme the client must use
	// when presenting the token ("bearer").
	TokenType string `json:"token_type"`
}

// MessageResponse is a generic informational body, used by the API root
// probe endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse acknowledges a state-changing request that has no
// meaningful payload, such as marking a notification as read.
type SuccessResponse struct {
	Success bool `json:"success"`
}
