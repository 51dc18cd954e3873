package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implementación PostgreSQL del repositorio de insumos.
// Las unidades de presentación van como JSONB; items legados tienen
// units NULL y solo el campo grueso unidad.
type ItemRepository struct {
	q Querier
}

// NewItemRepository acepta pool o tx.
func NewItemRepository(q Querier) *ItemRepository {
	return &ItemRepository{q: q}
}

type unitRow struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Factor string `json:"factor"`
}

const itemColumns = `id, nombre, stock, base_unit, units, unidad, min_stock, max_stock, updated_at`

// GetByID busca un insumo por ID. Retorna domain.ErrNotFound si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.InventoryItem, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE id = $1`, id)
	return scanItem(row)
}

// GetForUpdate bloquea la fila del insumo. Usar dentro de una transacción.
func (r *ItemRepository) GetForUpdate(id string) (*entity.InventoryItem, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE id = $1
		FOR UPDATE`, id)
	return scanItem(row)
}

// List devuelve los insumos ordenados por nombre.
func (r *ItemRepository) List(limit, offset int) ([]entity.InventoryItem, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		ORDER BY nombre ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar insumos: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// UpdateStock persiste el nuevo stock en unidad base.
func (r *ItemRepository) UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_items
		SET stock = $2, updated_at = $3
		WHERE id = $1`, id, stock, updatedAt)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		it       entity.InventoryItem
		baseUnit *string
		unitsRaw []byte
	)
	err := row.Scan(&it.ID, &it.Nombre, &it.Stock, &baseUnit, &unitsRaw, &it.Unidad,
		&it.Min, &it.Max, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer insumo: %w", err)
	}
	if baseUnit != nil {
		it.BaseUnit = *baseUnit
	}
	it.Units, err = unmarshalUnits(unitsRaw)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func unmarshalUnits(raw []byte) ([]entity.UnitDef, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []unitRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("deserializar units: %w", err)
	}
	units := make([]entity.UnitDef, 0, len(rows))
	for _, u := range rows {
		factor, err := decimal.NewFromString(u.Factor)
		if err != nil {
			return nil, fmt.Errorf("factor inválido en units: %w", err)
		}
		units = append(units, entity.UnitDef{Code: u.Code, Label: u.Label, Factor: factor})
	}
	return units, nil
}
