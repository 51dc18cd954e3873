package orders

import (
	"time"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// Tier color de la barra de progreso del panel.
type Tier string

const (
	TierVerde    Tier = "verde"
	TierAmarillo Tier = "amarillo"
	TierRojo     Tier = "rojo"
)

// Ventanas SLA por defecto (horas) por estado. Los call sites históricos
// no coinciden entre sí (preparación usa 48h en el panel y 72h en el
// seguimiento), así que la ventana es siempre un parámetro del caller y
// estos valores son solo el default.
const (
	DefaultPendienteHoras   = 24
	DefaultPreparacionHoras = 48
	DefaultListoHoras       = 48
)

// Umbrales de urgencia por defecto (horas restantes).
const (
	DefaultUrgentePendiente   = 6
	DefaultUrgentePreparacion = 36
)

// Options parámetros del cálculo. Cero significa "usar el default del
// estado"; cada vista pasa los suyos para preservar su comportamiento.
type Options struct {
	WindowHours int
	UrgentHours int
}

// Urgency clasificación derivada, nunca persistida: se recalcula en cada
// render contra el reloj inyectado.
type Urgency struct {
	Expired     bool
	Urgent      bool
	HoursLeft   int
	MinutesLeft int
	Progress    float64 // 0..100, porcentaje de ventana restante
	Tier        Tier
}

// DefaultWindowHours ventana SLA por defecto del estado; 0 si el estado
// no lleva timer (terminales y desconocidos).
func DefaultWindowHours(s entity.OrderStatus) int {
	switch s {
	case entity.StatusPendiente:
		return DefaultPendienteHoras
	case entity.StatusEnPreparacion:
		return DefaultPreparacionHoras
	case entity.StatusListo:
		return DefaultListoHoras
	}
	return 0
}

func defaultUrgentHours(s entity.OrderStatus) int {
	if s == entity.StatusEnPreparacion {
		return DefaultUrgentePreparacion
	}
	return DefaultUrgentePendiente
}

// referenceTime timestamp de la transición AL estado actual, con
// fallback a CreatedAt si la transición específica no quedó registrada.
func referenceTime(o entity.Order) time.Time {
	switch o.Status {
	case entity.StatusEnPreparacion:
		if !o.AcceptedAt.IsZero() {
			return o.AcceptedAt
		}
	case entity.StatusListo:
		if !o.ReadyAt.IsZero() {
			return o.ReadyAt
		}
	}
	return o.CreatedAt
}

// Compute calcula la urgencia del pedido contra el instante now. El
// segundo retorno es false cuando el estado no lleva timer: el caller no
// renderiza nada en ese caso. Un timestamp de referencia en el futuro
// (desfase de reloj) no es error: la aritmética sigue y puede dar más
// horas que la ventana. Una referencia cero (timestamp malo) hace que el
// pedido salga vencido, que es el comportamiento buscado para que el
// dato malo sea visible.
func Compute(o entity.Order, now time.Time, opts Options) (Urgency, bool) {
	window := opts.WindowHours
	if window <= 0 {
		window = DefaultWindowHours(o.Status)
	}
	if window <= 0 {
		return Urgency{}, false
	}

	deadline := referenceTime(o).Add(time.Duration(window) * time.Hour)
	remaining := deadline.Sub(now)

	if remaining <= 0 {
		return Urgency{Expired: true, Tier: TierRojo}, true
	}

	u := Urgency{
		HoursLeft:   int(remaining / time.Hour),
		MinutesLeft: int((remaining % time.Hour) / time.Minute),
	}

	urgent := opts.UrgentHours
	if urgent <= 0 {
		urgent = defaultUrgentHours(o.Status)
	}
	u.Urgent = u.HoursLeft <= urgent

	u.Progress = 100 * remaining.Minutes() / float64(window*60)
	if u.Progress > 100 {
		u.Progress = 100
	}

	u.Tier = tierFor(o.Status, u.HoursLeft)
	return u, true
}

// tierFor tramos de color por estado: preparación usa >36 verde,
// 12–36 amarillo, <=12 rojo; el resto >12 verde, 6–12 amarillo, <=6 rojo.
func tierFor(s entity.OrderStatus, hoursLeft int) Tier {
	if s == entity.StatusEnPreparacion {
		switch {
		case hoursLeft > 36:
			return TierVerde
		case hoursLeft > 12:
			return TierAmarillo
		default:
			return TierRojo
		}
	}
	switch {
	case hoursLeft > 12:
		return TierVerde
	case hoursLeft > 6:
		return TierAmarillo
	default:
		return TierRojo
	}
}
