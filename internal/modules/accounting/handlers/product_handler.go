package handlers

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Router /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	product, err := h.products.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Name or SKU search"
// @Success 200 {object} map[string]interface{}
// @Router /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	filter := models.ProductFilter{
		Category:        c.Query("category"),
		ProductType:     c.Query("product_type"),
		Search:          c.Query("search"),
		IncludeArchived: c.QueryBool("include_archived", false),
		Page:            page,
		Limit:           limit,
	}
	products, total, err := h.products.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(products, total, page, limit))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	product, err := h.products.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) ToggleArchive(c *fiber.Ctx) error {
	product, err := h.products.ToggleArchive(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
