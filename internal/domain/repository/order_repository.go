package repository

import "github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"

// OrderRepository acceso a pedidos.
type OrderRepository interface {
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido (SELECT FOR UPDATE) para
	// cambios de estado; usar dentro de una transacción.
	GetForUpdate(id string) (*entity.Order, error)
	// List filtra por estado; status vacío lista todos los no terminales.
	List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error)
	Create(o *entity.Order) error
	Update(o *entity.Order) error
}
