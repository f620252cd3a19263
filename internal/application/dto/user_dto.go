package dto

// Credentials entrada del formulario de login.
type Credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse sesión emitida tras un login correcto.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthFailureResponse cuerpo de un login fallido.
type AuthFailureResponse struct {
	Message string `json:"message"`
}
