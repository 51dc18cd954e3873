package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo. Precio es el del canal pedido
// (retail o mayorista).
type ProductResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
}
