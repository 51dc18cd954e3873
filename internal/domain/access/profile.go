package access

// RawProfile perfil tal como llega del store: campos duplicados por
// nombres legados (rol/role, accessModules/permissions, isAdmin suelto).
type RawProfile struct {
	ID            string   `json:"id"`
	Nombre        string   `json:"nombre"`
	Rol           string   `json:"rol"`
	Role          string   `json:"role"`
	IsAdmin       bool     `json:"isAdmin"`
	AccessModules []string `json:"accessModules"`
	Permissions   []string `json:"permissions"`
}

// Profile perfil canónico: un solo rol, un solo booleano de admin y una
// sola lista de módulos. Se calcula una vez por carga de perfil.
type Profile struct {
	ID            string
	Nombre        string
	Rol           string
	Admin         bool
	AccessModules []string
}

// NormalizeProfile colapsa los nombres de campo duplicados en un perfil
// canónico. rol gana sobre role; accessModules gana sobre permissions;
// el booleano legado isAdmin también activa Admin.
func NormalizeProfile(raw RawProfile) Profile {
	rol := raw.Rol
	if rol == "" {
		rol = raw.Role
	}

	modules := raw.AccessModules
	if len(modules) == 0 {
		modules = raw.Permissions
	}

	return Profile{
		ID:            raw.ID,
		Nombre:        raw.Nombre,
		Rol:           rol,
		Admin:         raw.IsAdmin || IsAdmin(rol),
		AccessModules: modules,
	}
}

// HasAccess resuelve el acceso al módulo con el perfil ya normalizado.
func (p Profile) HasAccess(moduleID string) bool {
	if p.Admin {
		return true
	}
	return HasAccess(moduleID, p.Rol, p.AccessModules)
}
