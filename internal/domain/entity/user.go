package entity

import "time"

// Roles válidos para User. admin y adminGeneral ven todos los módulos;
// el resto depende de AccessModules.
const (
	RolAdmin        = "admin"
	RolAdminGeneral = "adminGeneral"
	RolPedidos      = "pedidos"
	RolProduccion   = "produccion"
	RolReparto      = "reparto"
	RolCobranzas    = "cobranzas"
	RolMayorista    = "mayorista"
	RolRetailUser   = "retailUser"
)

// User usuario del sistema. AccessModules solo aplica a roles no
// administrativos; lo muta un administrador, nunca expira solo.
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt, nunca en claro después de persistir
	Nombre        string
	Rol           string
	AccessModules []string
	Status        string // active, inactive, suspended
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
