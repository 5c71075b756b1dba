package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/webstore/catalog-api/api/http/presenter"
	"github.com/webstore/catalog-api/pkg/logging"
	"github.com/webstore/catalog-api/pkg/product"
)

type ProductHandler struct {
	useCase product.UseCase
	log     logging.Logger
}

func NewProductHandler(useCase product.UseCase, log logging.Logger) *ProductHandler {
	return &ProductHandler{useCase: useCase, log: log}
}

type productRequest struct {
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func (h *ProductHandler) fail(c *fiber.Ctx, op string, err error) error {
	status, msg := presenter.Map(err)
	if status == http.StatusInternalServerError {
		h.log.Error(c.Context(), op+" failed", "error", err)
	}
	return presenter.Error(c, status, msg)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List returns the whole catalog, unfiltered.
// @Summary List products
// @Tags    products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} product.Product
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.useCase.List(c.Context())
	if err != nil {
		return h.fail(c, "list products", err)
	}
	return presenter.JSON(c, http.StatusOK, products)
}

// GetByID returns one product.
// @Summary Get product by id
// @Tags    products
// @Produce json
// @Param   id path int true "product id"
// @Security BearerAuth
// @Success 200 {object} product.Product
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	p, err := h.useCase.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, "get product", err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Create persists a new product and returns it with the generated id.
// @Summary Create product
// @Tags    products
// @Accept  json
// @Produce json
// @Param   input body productRequest true "product fields"
// @Security BearerAuth
// @Success 201 {object} product.Product
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.useCase.Create(c.Context(), product.Product{
		Name:        req.ProductName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		return h.fail(c, "create product", err)
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

// Update replaces the listed fields of an existing product.
// @Summary Update product
// @Tags    products
// @Accept  json
// @Produce plain
// @Param   id path int true "product id"
// @Param   input body productRequest true "product fields"
// @Security BearerAuth
// @Success 200 {string} string "Product updated successfully"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	_, err = h.useCase.Update(c.Context(), product.Product{
		ID:          id,
		Name:        req.ProductName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		return h.fail(c, "update product", err)
	}
	return c.Status(http.StatusOK).SendString("Product updated successfully")
}

// Delete removes a product.
// @Summary Delete product
// @Tags    products
// @Produce plain
// @Param   id path int true "product id"
// @Security BearerAuth
// @Success 200 {string} string "Product deleted successfully"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	if err := h.useCase.Delete(c.Context(), id); err != nil {
		return h.fail(c, "delete product", err)
	}
	return c.Status(http.StatusOK).SendString("Product deleted successfully")
}
