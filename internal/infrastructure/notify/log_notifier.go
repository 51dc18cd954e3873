package notify

import (
	"context"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/inventory"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/logger"
)

var _ inventory.LowStockNotifier = (*LogNotifier)(nil)

// LogNotifier notificador de stock bajo que emite un log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyLowStock emite la alerta de stock bajo después del movimiento.
func (n *LogNotifier) NotifyLowStock(ctx context.Context, item entity.InventoryItem, mov entity.StockMovement) {
	n.log.Warn().
		Str("item_id", item.ID).
		Str("item", item.Nombre).
		Str("stock", mov.StockDespues.String()).
		Str("minimo", item.Min.String()).
		Str("movimiento_id", mov.ID).
		Msg("stock bajo el mínimo")
}
