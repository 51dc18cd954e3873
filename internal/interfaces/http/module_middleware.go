package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/access"
)

// RequireModule bloquea la ruta si el usuario no tiene acceso al módulo.
// Resuelve con rol + módulos del token; ante cualquier duda (sin rol,
// sin grants, módulo desconocido) niega. Colocar SIEMPRE después de
// AuthMiddleware.
func RequireModule(moduleID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		modules := GetModules(c)
		if !access.HasAccess(moduleID, role, modules) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso al módulo"})
		}
		return c.Next()
	}
}
