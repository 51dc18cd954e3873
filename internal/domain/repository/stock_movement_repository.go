package repository

import "github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"

// StockMovementRepository registro de auditoría de stock. Solo inserta y
// lista: los movimientos nunca se mutan ni se borran.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]entity.StockMovement, error)
}
