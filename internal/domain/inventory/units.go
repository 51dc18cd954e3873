package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
)

// UnitSchema esquema de unidades de un insumo: unidad base canónica y
// las presentaciones definidas sobre ella.
type UnitSchema struct {
	BaseUnit           string
	Units              []entity.UnitDef
	DefaultDisplayUnit string
}

var one = decimal.NewFromInt(1)

// ToBase convierte qty expresado en unit a la unidad base.
func ToBase(qty decimal.Decimal, unit entity.UnitDef) decimal.Decimal {
	return qty.Mul(unit.Factor)
}

// FromBase convierte qtyBase (unidad base) a la unidad de presentación.
// Un factor cero o negativo se trata como 1: estas funciones son totales
// y nunca fallan.
func FromBase(qtyBase decimal.Decimal, unit entity.UnitDef) decimal.Decimal {
	if unit.Factor.LessThanOrEqual(decimal.Zero) {
		return qtyBase
	}
	return qtyBase.Div(unit.Factor)
}

// FindUnit busca la unidad por código exacto. Si no existe cae en
// silencio a la primera unidad definida; los callers tratan ese fallback
// como default, no como señal de error. Con lista vacía retorna una
// unidad identidad (factor 1).
func FindUnit(units []entity.UnitDef, code string) entity.UnitDef {
	for _, u := range units {
		if u.Code == code {
			return u
		}
	}
	if len(units) > 0 {
		return units[0]
	}
	return entity.UnitDef{Code: code, Factor: one}
}

// DefaultUnitsFor esquema fijo de compatibilidad para items legados que
// solo registraron el tipo grueso de unidad ("kg" o "unidad"). Un tipo
// desconocido cae al esquema de unidades sueltas, coherente con el
// fallback silencioso de FindUnit.
func DefaultUnitsFor(kind string) UnitSchema {
	if kind == "kg" {
		return UnitSchema{
			BaseUnit: "kg",
			Units: []entity.UnitDef{
				{Code: "kg", Label: "Kilogramo", Factor: one},
				{Code: "bag1", Label: "Bolsa 1 kg", Factor: one},
				{Code: "sack25", Label: "Saco 25 kg", Factor: decimal.NewFromInt(25)},
				{Code: "sack50", Label: "Saco 50 kg", Factor: decimal.NewFromInt(50)},
			},
			DefaultDisplayUnit: "kg",
		}
	}
	return UnitSchema{
		BaseUnit: "unid",
		Units: []entity.UnitDef{
			{Code: "unid", Label: "Unidad", Factor: one},
			{Code: "pack10", Label: "Paquete x10", Factor: decimal.NewFromInt(10)},
			{Code: "pack20", Label: "Paquete x20", Factor: decimal.NewFromInt(20)},
		},
		DefaultDisplayUnit: "unid",
	}
}

// SchemaFor resuelve el esquema de unidades del item: usa el esquema
// rico si viene completo y si no aplica el shim de migración
// DefaultUnitsFor sobre el campo legado Unidad.
func SchemaFor(item entity.InventoryItem) UnitSchema {
	if item.BaseUnit != "" && len(item.Units) > 0 {
		display := item.BaseUnit
		return UnitSchema{BaseUnit: item.BaseUnit, Units: item.Units, DefaultDisplayUnit: display}
	}
	return DefaultUnitsFor(item.Unidad)
}
