package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitDTO unidad de presentación.
type UnitDTO struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Factor decimal.Decimal `json:"factor"`
}

// ItemResponse insumo con su stock en base y en la unidad de
// presentación por defecto.
type ItemResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Stock          decimal.Decimal `json:"stock"` // unidad base
	BaseUnit       string          `json:"base_unit"`
	Units          []UnitDTO       `json:"units"`
	DisplayUnit    string          `json:"display_unit"`
	DisplayedStock decimal.Decimal `json:"displayed_stock"`
	Min            decimal.Decimal `json:"min"`
	Max            decimal.Decimal `json:"max"`
	LowStock       bool            `json:"low_stock"`
}

// AdjustStockRequest edición directa del stock mostrado: nuevo_valor va
// en la unidad seleccionada.
type AdjustStockRequest struct {
	Unidad     string          `json:"unidad"`
	NuevoValor decimal.Decimal `json:"nuevo_valor"`
	Detalle    string          `json:"detalle"`
}

// RegisterMovementRequest entrada o salida en la unidad seleccionada.
type RegisterMovementRequest struct {
	Tipo     string          `json:"tipo" validate:"required,oneof=entrada salida"`
	Unidad   string          `json:"unidad"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Detalle  string          `json:"detalle"`
}

// MovementResponse registro de auditoría.
type MovementResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	Tipo             string          `json:"tipo"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	CantidadOriginal decimal.Decimal `json:"cantidad_original"`
	UnidadOriginal   string          `json:"unidad_original"`
	StockAntes       decimal.Decimal `json:"stock_antes"`
	StockDespues     decimal.Decimal `json:"stock_despues"`
	Detalle          string          `json:"detalle,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        string          `json:"created_by"`
}
