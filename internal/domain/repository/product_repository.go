package repository

import "github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"

// ProductRepository acceso al catálogo de productos.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	ListActive() ([]entity.Product, error)
}
