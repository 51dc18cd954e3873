package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/access"
)

// rol gana sobre role; accessModules gana sobre permissions.
func TestNormalizeProfile_CamposDuplicados(t *testing.T) {
	p := access.NormalizeProfile(access.RawProfile{
		ID:            "u-1",
		Rol:           "pedidos",
		Role:          "produccion",
		AccessModules: []string{"orders"},
		Permissions:   []string{"production"},
	})

	assert.Equal(t, "pedidos", p.Rol, "rol tiene prioridad sobre role")
	assert.Equal(t, []string{"orders"}, p.AccessModules, "accessModules tiene prioridad sobre permissions")
	assert.False(t, p.Admin)
}

func TestNormalizeProfile_CamposLegados(t *testing.T) {
	p := access.NormalizeProfile(access.RawProfile{
		Role:        "cobranzas",
		Permissions: []string{"billing"},
	})

	assert.Equal(t, "cobranzas", p.Rol, "role es el fallback de rol")
	assert.Equal(t, []string{"billing"}, p.AccessModules, "permissions es el fallback de accessModules")
}

// El booleano legado isAdmin produce el mismo canonical que rol admin.
func TestNormalizeProfile_IsAdminLegado(t *testing.T) {
	porFlag := access.NormalizeProfile(access.RawProfile{Rol: "pedidos", IsAdmin: true})
	porRol := access.NormalizeProfile(access.RawProfile{Rol: "adminGeneral"})

	assert.True(t, porFlag.Admin)
	assert.True(t, porRol.Admin)
	assert.True(t, porFlag.HasAccess("billing-admin"), "admin por flag ve todo")
}

func TestProfile_HasAccess(t *testing.T) {
	p := access.NormalizeProfile(access.RawProfile{
		Rol:           "pedidos",
		AccessModules: []string{"pedidos"},
	})

	assert.True(t, p.HasAccess("orders-admin"), "el alias legado habilita el panel de pedidos")
	assert.False(t, p.HasAccess("billing-admin"))
}
