package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	appusers "github.com/Rubennaldos/pecaditos-web-sub000/internal/application/users"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateAccessModules(id string, modules []string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AccessModules = modules
	return nil
}

func TestUpdateAccessModules_AdminOtorgaModulos(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "user-1", Rol: entity.RolPedidos})
	uc := appusers.NewUserUseCase(repo)

	err := uc.UpdateAccessModules(entity.RolAdmin, "user-1", dto.UpdateModulesRequest{
		AccessModules: []string{"orders-admin", "dashboard"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders-admin", "dashboard"}, repo.users["user-1"].AccessModules)
}

func TestUpdateAccessModules_NoAdminEsRechazado(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "user-1", Rol: entity.RolPedidos})
	uc := appusers.NewUserUseCase(repo)

	err := uc.UpdateAccessModules(entity.RolPedidos, "user-1", dto.UpdateModulesRequest{
		AccessModules: []string{"orders-admin"},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"solo un administrador puede mutar grants")
}

func TestUpdateAccessModules_TargetAdminEsConflicto(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "user-1", Rol: entity.RolAdminGeneral})
	uc := appusers.NewUserUseCase(repo)

	err := uc.UpdateAccessModules(entity.RolAdmin, "user-1", dto.UpdateModulesRequest{
		AccessModules: []string{"orders-admin"},
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un rol administrativo ya ve todo y no recibe módulos")
}

func TestUpdateAccessModules_TargetInexistente(t *testing.T) {
	uc := appusers.NewUserUseCase(newFakeUserRepo())
	err := uc.UpdateAccessModules(entity.RolAdmin, "no-existe", dto.UpdateModulesRequest{
		AccessModules: []string{"orders-admin"},
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
