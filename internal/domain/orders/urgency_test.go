package orders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/orders"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func pedidoEnEstado(status entity.OrderStatus) entity.Order {
	return entity.Order{ID: "p-1", Status: status, CreatedAt: testNow.Add(-1 * time.Hour)}
}

// Pedido pendiente creado hace 25h con ventana de 24h → vencido, 0h 0m.
func TestCompute_PendienteVencido(t *testing.T) {
	o := pedidoEnEstado(entity.StatusPendiente)
	o.CreatedAt = testNow.Add(-25 * time.Hour)

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok, "pendiente debe llevar timer")

	assert.True(t, u.Expired, "a las 25h de una ventana de 24h el pedido está vencido")
	assert.Equal(t, 0, u.HoursLeft)
	assert.Equal(t, 0, u.MinutesLeft)
	assert.False(t, u.Urgent, "vencido nunca se marca además como urgente")
	assert.Equal(t, orders.TierRojo, u.Tier)
}

// Aceptado hace 10h con ventana de 48h → 38h restantes, ni vencido ni
// urgente (el umbral de preparación es 36h).
func TestCompute_PreparacionConHolgura(t *testing.T) {
	o := pedidoEnEstado(entity.StatusEnPreparacion)
	o.AcceptedAt = testNow.Add(-10 * time.Hour)

	u, ok := orders.Compute(o, testNow, orders.Options{WindowHours: 48})
	require.True(t, ok)

	assert.False(t, u.Expired)
	assert.Equal(t, 38, u.HoursLeft)
	assert.Equal(t, 0, u.MinutesLeft)
	assert.False(t, u.Urgent, "38h > umbral de 36h")
	assert.Equal(t, orders.TierVerde, u.Tier, "38h restantes cae en el tramo verde de preparación (>36)")
}

// En preparación con 30h restantes → urgente (<=36) y tramo amarillo.
func TestCompute_PreparacionUrgente(t *testing.T) {
	o := pedidoEnEstado(entity.StatusEnPreparacion)
	o.AcceptedAt = testNow.Add(-18 * time.Hour)

	u, ok := orders.Compute(o, testNow, orders.Options{WindowHours: 48})
	require.True(t, ok)

	assert.Equal(t, 30, u.HoursLeft)
	assert.True(t, u.Urgent, "30h <= umbral de 36h")
	assert.Equal(t, orders.TierAmarillo, u.Tier)
}

// La ventana es parámetro del caller: el seguimiento usa 72h para el
// mismo estado y el mismo pedido no sale urgente.
func TestCompute_VentanaAlternativa72h(t *testing.T) {
	o := pedidoEnEstado(entity.StatusEnPreparacion)
	o.AcceptedAt = testNow.Add(-10 * time.Hour)

	u, ok := orders.Compute(o, testNow, orders.Options{WindowHours: 72, UrgentHours: 12})
	require.True(t, ok)

	assert.Equal(t, 62, u.HoursLeft)
	assert.False(t, u.Urgent, "62h > umbral alternativo de 12h")
}

// Sin AcceptedAt la referencia cae a CreatedAt.
func TestCompute_FallbackACreatedAt(t *testing.T) {
	o := pedidoEnEstado(entity.StatusEnPreparacion)
	o.CreatedAt = testNow.Add(-47 * time.Hour)
	o.AcceptedAt = time.Time{}

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok)

	assert.False(t, u.Expired)
	assert.Equal(t, 1, u.HoursLeft, "48h de ventana - 47h transcurridas desde CreatedAt")
	assert.True(t, u.Urgent)
}

// Timestamp malo (cero) → el pedido se muestra VENCIDO, nunca se esconde.
func TestCompute_TimestampCeroSaleVencido(t *testing.T) {
	o := entity.Order{ID: "p-err", Status: entity.StatusPendiente}

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok)
	assert.True(t, u.Expired, "referencia cero debe salir máximamente vencida")
}

// Desfase de reloj: referencia en el futuro no es error, la aritmética
// sigue y puede dar más horas que la ventana.
func TestCompute_RelojDesfasado(t *testing.T) {
	o := pedidoEnEstado(entity.StatusPendiente)
	o.CreatedAt = testNow.Add(2 * time.Hour) // futuro

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok)

	assert.False(t, u.Expired)
	assert.Equal(t, 26, u.HoursLeft, "24h de ventana + 2h de desfase")
	assert.Equal(t, float64(100), u.Progress, "el progreso se recorta a 100")
}

// Estados terminales y desconocidos no llevan timer.
func TestCompute_EstadosSinTimer(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.StatusEntregado, entity.StatusCancelado, entity.StatusRechazado,
		entity.StatusPostergado, entity.OrderStatus("inexistente"),
	} {
		_, ok := orders.Compute(pedidoEnEstado(s), testNow, orders.Options{})
		assert.False(t, ok, "estado %q no debe computar urgencia", s)
	}
}

// Propiedad: con referencia fija, HoursLeft es no creciente al avanzar
// now; una vez vencido, permanece vencido.
func TestCompute_MonotoniaConElReloj(t *testing.T) {
	o := pedidoEnEstado(entity.StatusPendiente)
	o.CreatedAt = testNow

	prevHours := int(^uint(0) >> 1)
	vencido := false
	for h := 0; h <= 30; h++ {
		u, ok := orders.Compute(o, testNow.Add(time.Duration(h)*time.Hour), orders.Options{})
		require.True(t, ok)

		if vencido {
			assert.True(t, u.Expired, "vencido debe permanecer vencido (now=+%dh)", h)
			continue
		}
		assert.LessOrEqual(t, u.HoursLeft, prevHours,
			"HoursLeft no puede crecer al avanzar el reloj (now=+%dh)", h)
		prevHours = u.HoursLeft
		vencido = u.Expired
	}
	assert.True(t, vencido, "a +30h de una ventana de 24h el pedido tiene que haber vencido")
}

// Minutos restantes: floor de la división, no redondeo.
func TestCompute_MinutosPorPiso(t *testing.T) {
	o := pedidoEnEstado(entity.StatusPendiente)
	o.CreatedAt = testNow.Add(-23*time.Hour - 30*time.Minute - 59*time.Second)

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok)
	assert.Equal(t, 0, u.HoursLeft)
	assert.Equal(t, 29, u.MinutesLeft, "29m 1s restantes → floor = 29 minutos")
}

// Progreso: mitad de la ventana consumida → 50%.
func TestCompute_ProgresoMediaVentana(t *testing.T) {
	o := pedidoEnEstado(entity.StatusPendiente)
	o.CreatedAt = testNow.Add(-12 * time.Hour)

	u, ok := orders.Compute(o, testNow, orders.Options{})
	require.True(t, ok)
	assert.InDelta(t, 50.0, u.Progress, 0.01)
}

// Tramos de color del listado general: >12 verde, 6–12 amarillo, <=6 rojo.
func TestCompute_TramosPendiente(t *testing.T) {
	cases := []struct {
		horasTranscurridas time.Duration
		tier               orders.Tier
	}{
		{4 * time.Hour, orders.TierVerde},     // quedan ~20h
		{14 * time.Hour, orders.TierAmarillo}, // quedan ~10h
		{20 * time.Hour, orders.TierRojo},     // quedan ~4h
	}
	for _, tc := range cases {
		o := pedidoEnEstado(entity.StatusPendiente)
		o.CreatedAt = testNow.Add(-tc.horasTranscurridas)
		u, ok := orders.Compute(o, testNow, orders.Options{})
		require.True(t, ok)
		assert.Equal(t, tc.tier, u.Tier, "transcurridas %v", tc.horasTranscurridas)
	}
}
