package orders

import (
	"context"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// un repositorio de pedidos atado a esa tx. Garantiza que el cambio de
// estado y el estampado del timestamp sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
