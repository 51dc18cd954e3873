package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/inventory"
)

var ahora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func itemHarina(stockKg int64) entity.InventoryItem {
	schema := inventory.DefaultUnitsFor("kg")
	return entity.InventoryItem{
		ID:       "harina",
		Nombre:   "Harina sin preparar",
		Stock:    decimal.NewFromInt(stockKg),
		BaseUnit: schema.BaseUnit,
		Units:    schema.Units,
		Min:      decimal.NewFromInt(10),
	}
}

// Escenario de referencia: 30 kg mostrados en sacos de 25 → 1.2 sacos;
// editar a 2 sacos → delta base 20, stock nuevo 50.
func TestApplyAdjustment_EdicionEnSacos(t *testing.T) {
	item := itemHarina(30)
	saco := inventory.FindUnit(item.Units, "sack25")

	mostrado := inventory.DisplayedStock(item, saco)
	assert.True(t, decimal.NewFromFloat(1.2).Equal(mostrado), "30 kg en sacos de 25 se muestran como 1.2")

	adj := inventory.ApplyAdjustment(item, saco, decimal.NewFromInt(2), "u-1", "conteo físico", ahora)

	assert.True(t, decimal.NewFromInt(50).Equal(adj.NewStock), "2 sacos * 25 = 50 kg")
	assert.True(t, decimal.NewFromInt(20).Equal(adj.Movement.Cantidad), "delta en base = 20 kg")
	assert.True(t, decimal.NewFromFloat(0.8).Equal(adj.Movement.CantidadOriginal), "delta digitado = 2 - 1.2 sacos")
	assert.Equal(t, "sack25", adj.Movement.UnidadOriginal)
	assert.Equal(t, entity.MovimientoAjuste, adj.Movement.Tipo)
	assert.True(t, decimal.NewFromInt(30).Equal(adj.Movement.StockAntes))
	assert.True(t, decimal.NewFromInt(50).Equal(adj.Movement.StockDespues))
	assert.False(t, adj.LowStock, "50 kg > mínimo de 10")
}

// Invariante del movimiento: CantidadOriginal * factor ≈ Cantidad.
func TestApplyAdjustment_InvarianteDeUnidades(t *testing.T) {
	item := itemHarina(30)
	saco := inventory.FindUnit(item.Units, "sack25")

	adj := inventory.ApplyAdjustment(item, saco, decimal.NewFromFloat(3.4), "u-1", "", ahora)

	reconstruido := adj.Movement.CantidadOriginal.Mul(saco.Factor)
	assert.True(t, reconstruido.Sub(adj.Movement.Cantidad).Abs().LessThanOrEqual(decimal.New(1, -6)),
		"cantidadOriginal*factor (%s) debe aproximar cantidad (%s)", reconstruido, adj.Movement.Cantidad)
}

// Propiedad: ninguna secuencia de ajustes deja stock negativo.
func TestAjustes_StockNuncaNegativo(t *testing.T) {
	item := itemHarina(30)
	kg := inventory.FindUnit(item.Units, "kg")

	ediciones := []decimal.Decimal{
		decimal.NewFromInt(5),
		decimal.NewFromInt(-100), // edición absurda muy negativa
		decimal.NewFromInt(2),
		decimal.NewFromInt(-1),
	}
	for _, v := range ediciones {
		adj := inventory.ApplyAdjustment(item, kg, v, "u-1", "", ahora)
		require.True(t, adj.NewStock.GreaterThanOrEqual(decimal.Zero),
			"editar a %s dejó stock %s", v, adj.NewStock)
		require.True(t, adj.Movement.StockDespues.Equal(adj.NewStock))
		item.Stock = adj.NewStock
	}
}

// Salida mayor al stock disponible se recorta a 0, no a negativo.
func TestApplySalida_RecorteACero(t *testing.T) {
	item := itemHarina(30)
	saco := inventory.FindUnit(item.Units, "sack50")

	adj := inventory.ApplySalida(item, saco, decimal.NewFromInt(1), "u-1", "venta", ahora)

	assert.True(t, adj.NewStock.IsZero(), "sacar 50 kg de 30 deja 0, no -20")
	assert.True(t, decimal.NewFromInt(-50).Equal(adj.Movement.Cantidad),
		"el movimiento registra el delta solicitado completo")
	assert.True(t, adj.LowStock)
}

func TestApplyEntrada_EnPaquetes(t *testing.T) {
	schema := inventory.DefaultUnitsFor("unidad")
	item := entity.InventoryItem{
		ID:       "alfajores",
		Stock:    decimal.NewFromInt(8),
		BaseUnit: schema.BaseUnit,
		Units:    schema.Units,
		Min:      decimal.NewFromInt(12),
	}
	pack := inventory.FindUnit(item.Units, "pack10")

	adj := inventory.ApplyEntrada(item, pack, decimal.NewFromInt(3), "u-2", "producción", ahora)

	assert.True(t, decimal.NewFromInt(38).Equal(adj.NewStock), "8 + 3*10 = 38 unidades")
	assert.Equal(t, entity.MovimientoEntrada, adj.Movement.Tipo)
	assert.True(t, decimal.NewFromInt(3).Equal(adj.Movement.CantidadOriginal))
	assert.Equal(t, "pack10", adj.Movement.UnidadOriginal)
	assert.False(t, adj.LowStock)
}

// Stock resultante igual al mínimo también dispara stock bajo.
func TestApplySalida_LowStockEnElUmbral(t *testing.T) {
	item := itemHarina(30)
	kg := inventory.FindUnit(item.Units, "kg")

	adj := inventory.ApplySalida(item, kg, decimal.NewFromInt(20), "u-1", "", ahora)

	assert.True(t, decimal.NewFromInt(10).Equal(adj.NewStock))
	assert.True(t, adj.LowStock, "stock == min dispara la notificación")
}

// Cambiar la unidad de presentación no muta el stock: solo cambia el
// número mostrado.
func TestDisplayedStock_CambioDeUnidadNoMuta(t *testing.T) {
	item := itemHarina(30)

	enKg := inventory.DisplayedStock(item, inventory.FindUnit(item.Units, "kg"))
	enSacos := inventory.DisplayedStock(item, inventory.FindUnit(item.Units, "sack25"))

	assert.True(t, decimal.NewFromInt(30).Equal(enKg))
	assert.True(t, decimal.NewFromFloat(1.2).Equal(enSacos))
	assert.True(t, decimal.NewFromInt(30).Equal(item.Stock), "el stock persistido no cambió")
}
