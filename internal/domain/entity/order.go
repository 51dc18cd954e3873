package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canales de venta.
const (
	CanalRetail    = "retail"
	CanalMayorista = "mayorista"
)

// OrderStatus vocabulario de estados de los paneles administrativos.
// El seguimiento del cliente usa un vocabulario paralelo pero DISTINTO
// (TrackingStatus); nunca compartir el mismo enum entre ambos.
type OrderStatus string

const (
	StatusPendiente     OrderStatus = "pendiente"
	StatusEnPreparacion OrderStatus = "en_preparacion"
	StatusListo         OrderStatus = "listo"
	StatusEntregado     OrderStatus = "entregado"
	StatusRechazado     OrderStatus = "rechazado"
	StatusCancelado     OrderStatus = "cancelado"
	StatusPostergado    OrderStatus = "postergado"
)

// TrackingStatus vocabulario de estados del seguimiento de cliente.
type TrackingStatus string

const (
	TrackingPendiente     TrackingStatus = "pendiente"
	TrackingEnPreparacion TrackingStatus = "en_preparacion"
	TrackingListoEnvio    TrackingStatus = "listo_envio"
	TrackingEnReparto     TrackingStatus = "en_reparto"
	TrackingEntregado     TrackingStatus = "entregado"
	TrackingObservado     TrackingStatus = "observado"
	TrackingCancelado     TrackingStatus = "cancelado"
)

// OrderItem línea de un pedido.
type OrderItem struct {
	ProductID string
	Nombre    string
	Cantidad  decimal.Decimal
	Precio    decimal.Decimal
}

// Order pedido del panel de pedidos. Los timestamps de transición
// (AcceptedAt, ReadyAt, DeliveredAt) se estampan exactamente una vez,
// en orden no decreciente; el valor cero significa "aún no ocurrió".
type Order struct {
	ID          string
	Numero      string
	ClienteID   string
	Canal       string // retail | mayorista
	Status      OrderStatus
	Items       []OrderItem
	Total       decimal.Decimal
	CreatedAt   time.Time
	AcceptedAt  time.Time
	ReadyAt     time.Time
	DeliveredAt time.Time
	CreatedBy   string
	UpdatedAt   time.Time
}
