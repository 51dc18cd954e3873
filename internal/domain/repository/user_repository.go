package repository

import "github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"

// UserRepository acceso a usuarios.
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Create(u *entity.User) error
	UpdateAccessModules(id string, modules []string) error
}
