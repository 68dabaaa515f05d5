package entity

import "time"

// RoleAdmin es el único rol que el sistema asigna en signup.
// El claim de rol viaja en el JWT y lo verifica el middleware RBAC.
const RoleAdmin = "ADMIN"

// User representa una cuenta de administrador de la papelería.
// Nunca se actualiza ni se elimina desde esta API.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Role         string
	CreatedAt    time.Time
}
