package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// ProductV2Handler serves the v2 product endpoints. Same resource as v1, but
// the product code is exposed as an integer and the list has no name filter.
type ProductV2Handler struct {
	productService ports.ProductService
}

func NewProductV2Handler(productService ports.ProductService) *ProductV2Handler {
	return &ProductV2Handler{productService: productService}
}

type productV2Request struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"max=255"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Status      bool    `json:"status"`
	Code        int     `json:"code"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type productV2Response struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Status      bool              `json:"status"`
	Code        int               `json:"code"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Category    *categoryResponse `json:"category,omitempty"`
}

func toProductV2Response(p *domain.Product) productV2Response {
	return productV2Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		Code:        p.NumericCode,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
		Category:    toCategoryResponse(p.Category),
	}
}

// List returns a page of products.
//
// @Summary      List products (v2)
// @Tags         products-v2
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[productV2Response]
// @Failure      401   {object}  map[string]string
// @Router       /api/v2/products [get]
func (h *ProductV2Handler) List(c echo.Context) error {
	page, size := pageParams(c)

	result, err := h.productService.FindAll(c.Request().Context(), "", page, size)
	if err != nil {
		return err
	}

	items := make([]productV2Response, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toProductV2Response(p))
	}
	return c.JSON(http.StatusOK, ports.Page[productV2Response]{
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		Items:       items,
	})
}

// Get returns a single product by id.
//
// @Summary      Get product by ID (v2)
// @Tags         products-v2
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productV2Response
// @Failure      404  {object}  map[string]string
// @Router       /api/v2/products/{id} [get]
func (h *ProductV2Handler) Get(c echo.Context) error {
	product, err := h.productService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductV2Response(product))
}

// Create creates a product with a numeric code.
//
// @Summary      Create product (v2)
// @Tags         products-v2
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productV2Request  true  "Product details"
// @Success      201   {object}  productV2Response
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v2/products [post]
func (h *ProductV2Handler) Create(c echo.Context) error {
	var req productV2Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := auth.IdentityFrom(c)
	created, err := h.productService.Create(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		NumericCode: req.Code,
		CategoryID:  req.CategoryID,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProductV2Response(created))
}

// Update rewrites a product.
//
// @Summary      Update product (v2)
// @Tags         products-v2
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Product ID"
// @Param        body  body      productV2Request  true  "Product details"
// @Success      200   {object}  productV2Response
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v2/products/{id} [put]
func (h *ProductV2Handler) Update(c echo.Context) error {
	var req productV2Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := auth.IdentityFrom(c)
	updated, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		NumericCode: req.Code,
		CategoryID:  req.CategoryID,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductV2Response(updated))
}

// Delete removes a product.
//
// @Summary      Delete product (v2)
// @Tags         products-v2
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v2/products/{id} [delete]
func (h *ProductV2Handler) Delete(c echo.Context) error {
	actor, _ := auth.IdentityFrom(c)
	if err := h.productService.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
