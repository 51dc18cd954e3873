package users

import (
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/access"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// UserUseCase administración de usuarios: otorgar y revocar módulos.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// UpdateAccessModules reemplaza los módulos otorgados a un usuario.
// Solo un administrador puede mutar grants; a un rol administrativo no
// se le asignan módulos (ya ve todo).
func (uc *UserUseCase) UpdateAccessModules(actorRole, userID string, in dto.UpdateModulesRequest) error {
	if !access.IsAdmin(actorRole) {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if access.IsAdmin(user.Rol) {
		return domain.ErrConflict
	}
	return uc.userRepo.UpdateAccessModules(userID, in.AccessModules)
}
