package dto

// RegisterRequest entrada para registro: name, email, password.
type RegisterRequest struct {
	Name     string `json:"name" example:"John"`
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"StrongP@ss1"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"StrongP@ss1"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MeResponse identidad extraída del token.
type MeResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
