package access

import (
	"strings"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// moduleAliases nombres legados/localizados aceptados por módulo
// compuesto. La tabla es fija: cubre los ids históricos que quedaron
// grabados en perfiles antiguos.
var moduleAliases = map[string][]string{
	"orders-admin":     {"orders", "pedidos"},
	"delivery-admin":   {"delivery", "reparto"},
	"production-admin": {"production", "produccion"},
	"billing-admin":    {"billing", "cobranzas"},
	"customers-admin":  {"locations", "customers", "ubicaciones"},
	"catalogs-admin":   {"catalogs-admin", "catalogs", "catalogo", "catalog"},
	"dashboard":        {"dashboard", "admin"},
	"clients-access":   {"clients-access", "clients", "clientes"},
}

// IsAdmin indica si el rol pertenece al conjunto administrativo: los
// administradores ven todos los módulos sin consultar grants.
func IsAdmin(role string) bool {
	return role == entity.RolAdmin || role == entity.RolAdminGeneral
}

// HasAccess decide si el rol con los módulos otorgados puede ver el
// módulo pedido. Determinista y sin efectos: el caller lo reevalúa en
// cada render, así que todo son lookups O(|accessModules|).
//
// Política fail-closed: rol desconocido o lista vacía → sin acceso
// (lo opuesto al timer de pedidos, que ante datos malos falla a VENCIDO).
func HasAccess(moduleID, role string, accessModules []string) bool {
	if IsAdmin(role) {
		return true
	}
	if len(accessModules) == 0 {
		return false
	}

	granted := make(map[string]struct{}, len(accessModules))
	for _, m := range accessModules {
		granted[m] = struct{}{}
	}

	if _, ok := granted[moduleID]; ok {
		return true
	}

	// Match por prefijo: "orders-admin" queda cubierto por el grant "orders".
	if base, _, found := strings.Cut(moduleID, "-"); found {
		if _, ok := granted[base]; ok {
			return true
		}
	}

	for _, alias := range moduleAliases[moduleID] {
		if _, ok := granted[alias]; ok {
			return true
		}
	}
	return false
}
