package orders

import (
	"time"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// validTransitions transiciones permitidas entre estados del panel.
// postergado vuelve a preparación cuando el cliente reconfirma.
var validTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPendiente: {
		entity.StatusEnPreparacion,
		entity.StatusRechazado,
		entity.StatusCancelado,
		entity.StatusPostergado,
	},
	entity.StatusEnPreparacion: {
		entity.StatusListo,
		entity.StatusCancelado,
		entity.StatusPostergado,
	},
	entity.StatusListo: {
		entity.StatusEntregado,
		entity.StatusCancelado,
	},
	entity.StatusPostergado: {
		entity.StatusEnPreparacion,
		entity.StatusCancelado,
	},
}

// IsValidStatus indica si s pertenece al vocabulario del panel.
func IsValidStatus(s entity.OrderStatus) bool {
	switch s {
	case entity.StatusPendiente, entity.StatusEnPreparacion, entity.StatusListo,
		entity.StatusEntregado, entity.StatusRechazado, entity.StatusCancelado,
		entity.StatusPostergado:
		return true
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones ni timer.
func IsTerminal(s entity.OrderStatus) bool {
	switch s {
	case entity.StatusEntregado, entity.StatusRechazado, entity.StatusCancelado:
		return true
	}
	return false
}

// CanTransition indica si el pedido puede pasar de from a to.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, t := range validTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ToTracking mapea el estado del panel al vocabulario de seguimiento del
// cliente. Son dos enumeraciones separadas a propósito: en_reparto no
// tiene contraparte en el panel (lo estampa el flujo de reparto) y
// rechazado/postergado se muestran al cliente como "observado".
func ToTracking(s entity.OrderStatus) entity.TrackingStatus {
	switch s {
	case entity.StatusPendiente:
		return entity.TrackingPendiente
	case entity.StatusEnPreparacion:
		return entity.TrackingEnPreparacion
	case entity.StatusListo:
		return entity.TrackingListoEnvio
	case entity.StatusEntregado:
		return entity.TrackingEntregado
	case entity.StatusCancelado:
		return entity.TrackingCancelado
	case entity.StatusRechazado, entity.StatusPostergado:
		return entity.TrackingObservado
	}
	return entity.TrackingObservado
}

// StampTransition aplica la transición sobre el pedido y estampa el
// timestamp correspondiente exactamente una vez (si ya estaba estampado
// de una pasada anterior, se conserva el original). Los timestamps
// resultan monotónicamente no decrecientes porque now siempre es
// posterior a la transición previa.
func StampTransition(o *entity.Order, to entity.OrderStatus, now time.Time) {
	o.Status = to
	o.UpdatedAt = now
	switch to {
	case entity.StatusEnPreparacion:
		if o.AcceptedAt.IsZero() {
			o.AcceptedAt = now
		}
	case entity.StatusListo:
		if o.ReadyAt.IsZero() {
			o.ReadyAt = now
		}
	case entity.StatusEntregado:
		if o.DeliveredAt.IsZero() {
			o.DeliveredAt = now
		}
	}
}
