package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse perfil canónico del usuario (ya normalizado).
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Rol           string    `json:"rol"`
	Admin         bool      `json:"admin"`
	AccessModules []string  `json:"accessModules"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// LoginResponse token + perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateModulesRequest reemplazo de los módulos otorgados a un usuario
// no administrativo.
type UpdateModulesRequest struct {
	AccessModules []string `json:"accessModules" validate:"required"`
}
