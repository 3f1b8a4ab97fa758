package auth

// TokenRequest is the user payload presented for signing. Extra fields are
// ignored; only the identifying pair ends up in the claims.
type TokenRequest struct {
	ID    string `json:"_id"`
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse carries the signed bearer token
type TokenResponse struct {
	Token string `json:"token"`
}
