package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// Redondeos: las cantidades mostradas van a 3 decimales; los deltas
// internos en base a 6, para que el drift de flotantes no se acumule
// visiblemente tras ediciones repetidas.
const (
	displayPlaces = 3
	deltaPlaces   = 6
)

// Adjustment resultado de aplicar un cambio de stock: el nuevo stock en
// unidad base (nunca negativo), el movimiento de auditoría a persistir y
// el flag de stock bajo para disparar la notificación.
type Adjustment struct {
	NewStock decimal.Decimal
	Movement entity.StockMovement
	LowStock bool
}

// DisplayedStock stock del item expresado en la unidad seleccionada,
// redondeado a 3 decimales para render. Cambiar la unidad seleccionada
// solo cambia este número, nunca el stock persistido.
func DisplayedStock(item entity.InventoryItem, unit entity.UnitDef) decimal.Decimal {
	return FromBase(item.Stock, unit).Round(displayPlaces)
}

// ApplyAdjustment aplica la edición de stock mostrado: el usuario digitó
// newValue en la unidad seleccionada y el delta se calcula contra el
// stock actual en base. El stock resultante se recorta a 0 antes de
// persistir; el movimiento conserva el delta en ambas unidades.
func ApplyAdjustment(item entity.InventoryItem, unit entity.UnitDef, newValue decimal.Decimal, userID, detalle string, now time.Time) Adjustment {
	displayed := DisplayedStock(item, unit)
	newTotalBase := ToBase(newValue, unit)
	diffBase := newTotalBase.Sub(item.Stock).Round(deltaPlaces)

	return applyDelta(item, entity.MovimientoAjuste, diffBase,
		newValue.Sub(displayed).Round(deltaPlaces), unit.Code, userID, detalle, now)
}

// ApplyEntrada registra un ingreso de qty (en la unidad seleccionada).
func ApplyEntrada(item entity.InventoryItem, unit entity.UnitDef, qty decimal.Decimal, userID, detalle string, now time.Time) Adjustment {
	diffBase := ToBase(qty, unit).Round(deltaPlaces)
	return applyDelta(item, entity.MovimientoEntrada, diffBase, qty, unit.Code, userID, detalle, now)
}

// ApplySalida registra un egreso de qty (en la unidad seleccionada).
func ApplySalida(item entity.InventoryItem, unit entity.UnitDef, qty decimal.Decimal, userID, detalle string, now time.Time) Adjustment {
	diffBase := ToBase(qty, unit).Round(deltaPlaces).Neg()
	return applyDelta(item, entity.MovimientoSalida, diffBase, qty.Neg(), unit.Code, userID, detalle, now)
}

func applyDelta(item entity.InventoryItem, tipo string, diffBase, cantidadOriginal decimal.Decimal, unidad, userID, detalle string, now time.Time) Adjustment {
	antes := item.Stock
	despues := antes.Add(diffBase)
	if despues.LessThan(decimal.Zero) {
		despues = decimal.Zero
	}

	return Adjustment{
		NewStock: despues,
		Movement: entity.StockMovement{
			ItemID:           item.ID,
			Tipo:             tipo,
			Cantidad:         diffBase,
			CantidadOriginal: cantidadOriginal,
			UnidadOriginal:   unidad,
			StockAntes:       antes,
			StockDespues:     despues,
			Detalle:          detalle,
			CreatedAt:        now,
			CreatedBy:        userID,
		},
		LowStock: despues.LessThanOrEqual(item.Min),
	}
}
