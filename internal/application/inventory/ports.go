package inventory

import (
	"context"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la
// actualización de stock y el registro del movimiento de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// LowStockNotifier efecto colateral de stock bajo (colaborador externo:
// hoy un log estructurado, mañana el canal que sea). Nunca bloquea el
// movimiento: la notificación es best-effort.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, item entity.InventoryItem, adj entity.StockMovement)
}
