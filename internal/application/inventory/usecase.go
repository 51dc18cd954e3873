package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/inventory"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// StockUseCase movimientos de stock transaccionales (ajuste, entrada,
// salida) con bloqueo de fila (SELECT FOR UPDATE) y auditoría
// append-only. El reloj se inyecta para tests.
type StockUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.StockMovementRepository
	notifier LowStockNotifier
	now      func() time.Time
}

// NewStockUseCase construye el caso de uso. clock nil usa time.Now.
func NewStockUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.StockMovementRepository,
	notifier LowStockNotifier,
	clock func() time.Time,
) *StockUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &StockUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo, notifier: notifier, now: clock}
}

// AdjustStock aplica la edición del stock mostrado: bloquea la fila,
// resuelve el esquema de unidades (con el shim legado si hace falta),
// calcula el delta contra el stock en base y persiste stock + movimiento
// en la misma transacción. La notificación de stock bajo se dispara
// después del commit.
func (uc *StockUseCase) AdjustStock(ctx context.Context, itemID, userID string, in dto.AdjustStockRequest) (*dto.MovementResponse, error) {
	if itemID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	var result inventory.Adjustment
	var item *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) error {
		var err error
		item, err = itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		schema := inventory.SchemaFor(*item)
		unit := inventory.FindUnit(schema.Units, in.Unidad)

		result = inventory.ApplyAdjustment(*item, unit, in.NuevoValor, userID, in.Detalle, now)
		result.Movement.ID = uuid.New().String()

		if err := itemRepo.UpdateStock(item.ID, result.NewStock, now); err != nil {
			return err
		}
		return movRepo.Create(&result.Movement)
	})
	if err != nil {
		return nil, err
	}

	if result.LowStock && uc.notifier != nil {
		uc.notifier.NotifyLowStock(ctx, *item, result.Movement)
	}
	resp := toMovementResponse(result.Movement)
	return &resp, nil
}

// RegisterMovement registra una entrada o salida digitada en la unidad
// seleccionada. La salida se recorta a 0 (el movimiento conserva el
// delta solicitado completo para la auditoría).
func (uc *StockUseCase) RegisterMovement(ctx context.Context, itemID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if itemID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovimientoEntrada && in.Tipo != entity.MovimientoSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	var result inventory.Adjustment
	var item *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) error {
		var err error
		item, err = itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		schema := inventory.SchemaFor(*item)
		unit := inventory.FindUnit(schema.Units, in.Unidad)

		if in.Tipo == entity.MovimientoEntrada {
			result = inventory.ApplyEntrada(*item, unit, in.Cantidad, userID, in.Detalle, now)
		} else {
			result = inventory.ApplySalida(*item, unit, in.Cantidad, userID, in.Detalle, now)
		}
		result.Movement.ID = uuid.New().String()

		if err := itemRepo.UpdateStock(item.ID, result.NewStock, now); err != nil {
			return err
		}
		return movRepo.Create(&result.Movement)
	})
	if err != nil {
		return nil, err
	}

	if result.LowStock && uc.notifier != nil {
		uc.notifier.NotifyLowStock(ctx, *item, result.Movement)
	}
	resp := toMovementResponse(result.Movement)
	return &resp, nil
}

// ListItems insumos con su stock convertido a la unidad de presentación
// por defecto del esquema.
func (uc *StockUseCase) ListItems(ctx context.Context, page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// ListMovements historial de auditoría de un insumo.
func (uc *StockUseCase) ListMovements(ctx context.Context, itemID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	movs, err := uc.movRepo.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toItemResponse(it entity.InventoryItem) dto.ItemResponse {
	schema := inventory.SchemaFor(it)
	display := inventory.FindUnit(schema.Units, schema.DefaultDisplayUnit)

	units := make([]dto.UnitDTO, 0, len(schema.Units))
	for _, u := range schema.Units {
		units = append(units, dto.UnitDTO{Code: u.Code, Label: u.Label, Factor: u.Factor})
	}
	return dto.ItemResponse{
		ID:             it.ID,
		Nombre:         it.Nombre,
		Stock:          it.Stock,
		BaseUnit:       schema.BaseUnit,
		Units:          units,
		DisplayUnit:    display.Code,
		DisplayedStock: inventory.DisplayedStock(it, display),
		Min:            it.Min,
		Max:            it.Max,
		LowStock:       it.Stock.LessThanOrEqual(it.Min),
	}
}

func toMovementResponse(m entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:               m.ID,
		ItemID:           m.ItemID,
		Tipo:             m.Tipo,
		Cantidad:         m.Cantidad,
		CantidadOriginal: m.CantidadOriginal,
		UnidadOriginal:   m.UnidadOriginal,
		StockAntes:       m.StockAntes,
		StockDespues:     m.StockDespues,
		Detalle:          m.Detalle,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}
