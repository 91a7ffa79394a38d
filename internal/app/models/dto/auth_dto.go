package dto

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@tutionapp.com"`
	Password string `json:"password" binding:"required" example:"123"`
}

// LoginResponse is the authenticated user row returned on success. No token
// is issued; the client keeps this object as navigation state.
type LoginResponse struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Admin"`
	Email string `json:"email" example:"admin@tutionapp.com"`
	Role  string `json:"role" example:"admin"`
}
