package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"access_token"`
	TokenType string       `json:"token_type"`
	User      UserResponse `json:"user"`
}
