package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación PostgreSQL del repositorio de usuarios.
type UserRepository struct {
	q Querier
}

// NewUserRepository acepta pool o tx.
func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

const userColumns = `id, email, password_hash, nombre, rol, access_modules, status, created_at, updated_at`

// FindByEmail busca un usuario por email. Retorna domain.ErrUserNotFound
// si no existe.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email)
	return scanUser(row)
}

// GetByID busca un usuario por ID.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)
	return scanUser(row)
}

// Create inserta un usuario. Retorna domain.ErrConflict si el email ya
// está registrado.
func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, nombre, rol, access_modules, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.AccessModules, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// UpdateAccessModules reemplaza la lista de módulos otorgados.
func (r *UserRepository) UpdateAccessModules(id string, modules []string) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `
		UPDATE users
		SET access_modules = $2, updated_at = now()
		WHERE id = $1`, id, modules)
	if err != nil {
		return fmt.Errorf("actualizar módulos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol,
		&u.AccessModules, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer usuario: %w", err)
	}
	return &u, nil
}
