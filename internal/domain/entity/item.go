package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitDef unidad de presentación de un insumo. Factor es la conversión
// multiplicativa de 1 unidad de Code a la unidad base (la unidad base
// tiene Factor = 1).
type UnitDef struct {
	Code   string
	Label  string
	Factor decimal.Decimal
}

// InventoryItem insumo de almacén. Stock SIEMPRE se persiste en la unidad
// base, nunca en una unidad de presentación, y nunca es negativo.
// Unidad es el campo grueso del esquema legado ("kg" o "unidad"): los
// items antiguos no traen BaseUnit/Units y deben pasar por
// inventory.SchemaFor antes de cualquier conversión.
type InventoryItem struct {
	ID        string
	Nombre    string
	Stock     decimal.Decimal // en unidad base
	BaseUnit  string
	Units     []UnitDef
	Unidad    string          // esquema legado: kg | unidad
	Min       decimal.Decimal // umbral de stock bajo, en unidad base
	Max       decimal.Decimal
	UpdatedAt time.Time
}
