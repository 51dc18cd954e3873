package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste"
)

// StockMovement registro de auditoría de un cambio de stock: append-only,
// nunca se muta ni se borra. Cantidad va en unidad base;
// CantidadOriginal/UnidadOriginal preservan lo que el usuario digitó.
// Invariante: StockDespues = clamp(StockAntes + Cantidad, 0, ∞).
type StockMovement struct {
	ID               string
	ItemID           string
	Tipo             string // entrada | salida | ajuste
	Cantidad         decimal.Decimal
	CantidadOriginal decimal.Decimal
	UnidadOriginal   string
	StockAntes       decimal.Decimal
	StockDespues     decimal.Decimal
	Detalle          string
	CreatedAt        time.Time
	CreatedBy        string
}
