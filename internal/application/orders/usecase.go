package orders

import (
	"context"
	"time"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/orders"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// SLAConfig ventanas y umbrales por vista. Los call sites históricos no
// coinciden (preparación usa 48h/36h en el panel y 72h/12h en el
// seguimiento), así que cada vista conserva los suyos vía configuración
// en vez de unificarlos en silencio.
type SLAConfig struct {
	PendienteHoras           int
	PreparacionHoras         int
	PreparacionTrackingHoras int
	ListoHoras               int
	UrgentePendiente         int
	UrgentePreparacion       int
	UrgenteTracking          int
}

// DefaultSLAConfig valores históricos de cada vista.
func DefaultSLAConfig() SLAConfig {
	return SLAConfig{
		PendienteHoras:           orders.DefaultPendienteHoras,
		PreparacionHoras:         orders.DefaultPreparacionHoras,
		PreparacionTrackingHoras: 72,
		ListoHoras:               orders.DefaultListoHoras,
		UrgentePendiente:         orders.DefaultUrgentePendiente,
		UrgentePreparacion:       orders.DefaultUrgentePreparacion,
		UrgenteTracking:          12,
	}
}

// OrderUseCase casos de uso de pedidos: listados con urgencia, vista de
// seguimiento y cambios de estado transaccionales. El reloj se inyecta
// para que la urgencia sea testeable; los callers deben re-listar
// DESPUÉS de que el cambio de estado confirme, nunca antes, para no
// mostrar un countdown viejo.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	txRunner  TxRunner
	sla       SLAConfig
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. clock nil usa time.Now.
func NewOrderUseCase(orderRepo repository.OrderRepository, txRunner TxRunner, sla SLAConfig, clock func() time.Time) *OrderUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &OrderUseCase{orderRepo: orderRepo, txRunner: txRunner, sla: sla, now: clock}
}

// panelOptions opciones de cálculo para los paneles administrativos.
func (uc *OrderUseCase) panelOptions(s entity.OrderStatus) orders.Options {
	switch s {
	case entity.StatusPendiente:
		return orders.Options{WindowHours: uc.sla.PendienteHoras, UrgentHours: uc.sla.UrgentePendiente}
	case entity.StatusEnPreparacion:
		return orders.Options{WindowHours: uc.sla.PreparacionHoras, UrgentHours: uc.sla.UrgentePreparacion}
	case entity.StatusListo:
		return orders.Options{WindowHours: uc.sla.ListoHoras, UrgentHours: uc.sla.UrgentePendiente}
	}
	return orders.Options{}
}

// trackingOptions opciones del seguimiento de cliente (ventana larga,
// umbral corto).
func (uc *OrderUseCase) trackingOptions(s entity.OrderStatus) orders.Options {
	if s == entity.StatusEnPreparacion {
		return orders.Options{WindowHours: uc.sla.PreparacionTrackingHoras, UrgentHours: uc.sla.UrgenteTracking}
	}
	return uc.panelOptions(s)
}

// List pedidos del panel con urgencia calculada contra el reloj actual.
func (uc *OrderUseCase) List(ctx context.Context, status entity.OrderStatus, page dto.PageRequest) ([]dto.OrderResponse, error) {
	if status != "" && !orders.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	list, err := uc.orderRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, now, uc.panelOptions(o.Status)))
	}
	return out, nil
}

// GetTracking vista pública de seguimiento: solo número, estado en el
// vocabulario del cliente y última actualización.
func (uc *OrderUseCase) GetTracking(ctx context.Context, orderID string) (*dto.TrackingResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.TrackingResponse{
		Numero:    o.Numero,
		Status:    string(orders.ToTracking(o.Status)),
		UpdatedAt: o.UpdatedAt,
	}
	if u, ok := orders.Compute(*o, uc.now(), uc.trackingOptions(o.Status)); ok {
		resp.Urgency = &dto.UrgencyDTO{
			Expired:     u.Expired,
			Urgent:      u.Urgent,
			HoursLeft:   u.HoursLeft,
			MinutesLeft: u.MinutesLeft,
			Progress:    u.Progress,
			Tier:        string(u.Tier),
		}
	}
	return resp, nil
}

// ChangeStatus aplica la transición dentro de una transacción: bloquea
// la fila, valida la transición y estampa el timestamp una sola vez.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, to entity.OrderStatus) error {
	if !orders.IsValidStatus(to) {
		return domain.ErrInvalidInput
	}
	now := uc.now()
	return uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		o, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if !orders.CanTransition(o.Status, to) {
			return domain.ErrInvalidTransition
		}
		orders.StampTransition(o, to, now)
		return orderRepo.Update(o)
	})
}

func toOrderResponse(o entity.Order, now time.Time, opts orders.Options) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:        o.ID,
		Numero:    o.Numero,
		ClienteID: o.ClienteID,
		Canal:     o.Canal,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemDTO{
			ProductID: it.ProductID,
			Nombre:    it.Nombre,
			Cantidad:  it.Cantidad,
			Precio:    it.Precio,
		})
	}
	if u, ok := orders.Compute(o, now, opts); ok {
		resp.Urgency = &dto.UrgencyDTO{
			Expired:     u.Expired,
			Urgent:      u.Urgent,
			HoursLeft:   u.HoursLeft,
			MinutesLeft: u.MinutesLeft,
			Progress:    u.Progress,
			Tier:        string(u.Tier),
		}
	}
	return resp
}
