package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// ItemRepository acceso a insumos de almacén.
type ItemRepository interface {
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para aplicar un
	// movimiento de stock sin condiciones de carrera.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	List(limit, offset int) ([]entity.InventoryItem, error)
	UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error
}
