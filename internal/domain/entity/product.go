package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo público y del portal mayorista.
type Product struct {
	ID              string
	Nombre          string
	Descripcion     string
	Categoria       string
	Precio          decimal.Decimal // precio retail
	PrecioMayorista decimal.Decimal
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
