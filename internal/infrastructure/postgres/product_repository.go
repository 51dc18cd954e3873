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

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación PostgreSQL del catálogo.
type ProductRepository struct {
	q Querier
}

// NewProductRepository acepta pool o tx.
func NewProductRepository(q Querier) *ProductRepository {
	return &ProductRepository{q: q}
}

const productColumns = `id, nombre, descripcion, categoria, precio, precio_mayorista, activo, created_at, updated_at`

// GetByID busca un producto por ID.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1`, id)

	var p entity.Product
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Precio,
		&p.PrecioMayorista, &p.Activo, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	return &p, nil
}

// ListActive devuelve los productos activos ordenados por categoría y
// nombre, que es el orden del catálogo público.
func (r *ProductRepository) ListActive() ([]entity.Product, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE activo = true
		ORDER BY categoria ASC, nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Precio,
			&p.PrecioMayorista, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("leer producto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
