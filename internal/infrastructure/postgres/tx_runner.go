package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appinventory "github.com/Rubennaldos/pecaditos-web-sub000/internal/application/inventory"
	apporders "github.com/Rubennaldos/pecaditos-web-sub000/internal/application/orders"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados
// a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// OrderTxRunner variante para cambios de estado de pedidos.
type OrderTxRunner struct {
	pool *pgxpool.Pool
}

// NewOrderTxRunner construye el runner de pedidos.
func NewOrderTxRunner(pool *pgxpool.Pool) *OrderTxRunner {
	return &OrderTxRunner{pool: pool}
}

var _ apporders.TxRunner = (*OrderTxRunner)(nil)

// Run inicia una transacción con un repo de pedidos atado a la tx.
func (r *OrderTxRunner) Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
