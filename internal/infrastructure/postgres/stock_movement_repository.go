package postgres

import (
	"context"
	"fmt"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository auditoría de stock en PostgreSQL. La tabla es
// append-only: nunca UPDATE ni DELETE sobre stock_movements.
type StockMovementRepository struct {
	q Querier
}

// NewStockMovementRepository acepta pool o tx.
func NewStockMovementRepository(q Querier) *StockMovementRepository {
	return &StockMovementRepository{q: q}
}

// Create inserta un movimiento.
func (r *StockMovementRepository) Create(m *entity.StockMovement) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, item_id, tipo, cantidad, cantidad_original,
			unidad_original, stock_antes, stock_despues, detalle, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.ItemID, m.Tipo, m.Cantidad, m.CantidadOriginal,
		m.UnidadOriginal, m.StockAntes, m.StockDespues, m.Detalle, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial de un insumo, más reciente primero.
func (r *StockMovementRepository) ListByItem(itemID string, limit, offset int) ([]entity.StockMovement, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, item_id, tipo, cantidad, cantidad_original, unidad_original,
			stock_antes, stock_despues, detalle, created_at, created_by
		FROM stock_movements
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var movements []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Tipo, &m.Cantidad, &m.CantidadOriginal,
			&m.UnidadOriginal, &m.StockAntes, &m.StockDespues, &m.Detalle, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("leer movimiento: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
