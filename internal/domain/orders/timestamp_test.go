package orders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/orders"
)

func TestParseTimestamp_EpochMillis(t *testing.T) {
	want := time.UnixMilli(1750000000000)

	assert.Equal(t, want, orders.ParseTimestamp(int64(1750000000000)))
	assert.Equal(t, want, orders.ParseTimestamp(float64(1750000000000)), "los números del store llegan como float64")
	assert.Equal(t, want, orders.ParseTimestamp("1750000000000"), "string de dígitos también es epoch millis")
}

func TestParseTimestamp_ISO(t *testing.T) {
	got := orders.ParseTimestamp("2025-06-15T12:30:00Z")
	assert.Equal(t, time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC), got.UTC())

	sinZona := orders.ParseTimestamp("2025-06-15T12:30:00")
	assert.False(t, sinZona.IsZero(), "ISO sin zona también se acepta")

	soloFecha := orders.ParseTimestamp("2025-06-15")
	assert.False(t, soloFecha.IsZero())
}

// Input imparseable nunca lanza: produce tiempo cero, que aguas abajo se
// lee como máximamente vencido.
func TestParseTimestamp_MalformadoEsCero(t *testing.T) {
	for _, v := range []any{nil, "", "no-es-fecha", "15/06/2025", int64(0), float64(-5), true} {
		assert.True(t, orders.ParseTimestamp(v).IsZero(), "valor %v debe dar tiempo cero", v)
	}
}
