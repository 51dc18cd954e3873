package catalog

import (
	"context"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

// Claves de caché por canal.
const (
	cacheKeyRetail    = "catalog:retail"
	cacheKeyMayorista = "catalog:mayorista"
)

// Cache caché de catálogo (cache-aside). Get con miss retorna ok=false;
// los errores de infraestructura del caché no interrumpen el listado.
type Cache interface {
	Get(ctx context.Context, key string) ([]entity.Product, bool)
	Set(ctx context.Context, key string, products []entity.Product)
	Invalidate(ctx context.Context, keys ...string)
}

// CatalogUseCase catálogo público del storefront y del portal
// mayorista, con caché por delante del repositorio.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	cache       Cache
}

// NewCatalogUseCase construye el caso de uso. cache puede ser nil
// (sin caché, todo va al repo).
func NewCatalogUseCase(productRepo repository.ProductRepository, cache Cache) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, cache: cache}
}

// RetailCatalog catálogo del storefront con precios retail.
func (uc *CatalogUseCase) RetailCatalog(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.catalog(ctx, cacheKeyRetail, false)
}

// WholesaleCatalog catálogo del portal mayorista con sus precios.
func (uc *CatalogUseCase) WholesaleCatalog(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.catalog(ctx, cacheKeyMayorista, true)
}

// InvalidateCatalogs invalida ambas claves; llamar tras cualquier
// mutación de productos.
func (uc *CatalogUseCase) InvalidateCatalogs(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, cacheKeyRetail, cacheKeyMayorista)
	}
}

func (uc *CatalogUseCase) catalog(ctx context.Context, key string, mayorista bool) ([]dto.ProductResponse, error) {
	var products []entity.Product
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, key); ok {
			products = cached
		}
	}
	if products == nil {
		var err error
		products, err = uc.productRepo.ListActive()
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.Set(ctx, key, products)
		}
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		precio := p.Precio
		if mayorista {
			precio = p.PrecioMayorista
		}
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Categoria:   p.Categoria,
			Precio:      precio,
		})
	}
	return out, nil
}
