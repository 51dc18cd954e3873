package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UrgencyDTO clasificación derivada del timer de un pedido. Se recalcula
// en cada respuesta, nunca se persiste.
type UrgencyDTO struct {
	Expired     bool    `json:"expired"`
	Urgent      bool    `json:"urgent"`
	HoursLeft   int     `json:"hours_left"`
	MinutesLeft int     `json:"minutes_left"`
	Progress    float64 `json:"progress"`
	Tier        string  `json:"tier"`
}

// OrderItemDTO línea de pedido.
type OrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Nombre    string          `json:"nombre"`
	Cantidad  decimal.Decimal `json:"cantidad"`
	Precio    decimal.Decimal `json:"precio"`
}

// OrderResponse pedido del panel con su urgencia calculada (nil para
// estados sin timer).
type OrderResponse struct {
	ID        string          `json:"id"`
	Numero    string          `json:"numero"`
	ClienteID string          `json:"cliente_id"`
	Canal     string          `json:"canal"`
	Status    string          `json:"status"`
	Items     []OrderItemDTO  `json:"items,omitempty"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Urgency   *UrgencyDTO     `json:"urgency,omitempty"`
}

// TrackingResponse vista del cliente: usa el vocabulario de seguimiento,
// no el del panel.
type TrackingResponse struct {
	Numero    string      `json:"numero"`
	Status    string      `json:"status"`
	UpdatedAt time.Time   `json:"updated_at"`
	Urgency   *UrgencyDTO `json:"urgency,omitempty"`
}

// ChangeStatusRequest cambio de estado desde un panel.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
