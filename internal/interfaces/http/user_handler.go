package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/users"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
)

// UserHandler administración de usuarios (solo administradores).
type UserHandler struct {
	uc       *users.UserUseCase
	validate *validator.Validate
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *users.UserUseCase, validate *validator.Validate) *UserHandler {
	return &UserHandler{uc: uc, validate: validate}
}

// UpdateModules godoc
// @Summary      Reemplazar los módulos otorgados a un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del usuario"
// @Param        body  body  dto.UpdateModulesRequest  true  "lista completa de módulos"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/modules [put]
func (h *UserHandler) UpdateModules(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateModulesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accessModules es requerido"})
	}

	err := h.uc.UpdateAccessModules(GetRole(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un administrador puede mutar grants"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "un rol administrativo no recibe módulos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "módulos actualizados"})
}
