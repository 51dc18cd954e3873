package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/catalog"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
)

// CatalogHandler catálogo del storefront (público) y del portal
// mayorista (protegido).
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Retail godoc
// @Summary      Catálogo público con precios retail
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Retail(c *fiber.Ctx) error {
	products, err := h.uc.RetailCatalog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// Wholesale godoc
// @Summary      Catálogo mayorista con sus precios
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/catalog/wholesale [get]
func (h *CatalogHandler) Wholesale(c *fiber.Ctx) error {
	products, err := h.uc.WholesaleCatalog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}
