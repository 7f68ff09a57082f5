package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// ProductHandler handles the v1 product endpoints, where the product code is
// a free-form string.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"max=255"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Status      bool    `json:"status"`
	Code        string  `json:"code"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toCategoryResponse(cat *domain.Category) *categoryResponse {
	if cat == nil {
		return nil
	}
	return &categoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   cat.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type productResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Status      bool              `json:"status"`
	Code        string            `json:"code"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Category    *categoryResponse `json:"category,omitempty"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		Code:        p.Code,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
		Category:    toCategoryResponse(p.Category),
	}
}

// List returns a page of products with an optional name filter.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number (0-based)"
// @Param        size  query     int     false  "Page size"
// @Param        name  query     string  false  "Name-contains filter"
// @Success      200   {object}  ports.Page[productResponse]
// @Failure      401   {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	result, err := h.productService.FindAll(c.Request().Context(), c.QueryParam("name"), page, size)
	if err != nil {
		return err
	}

	items := make([]productResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, ports.Page[productResponse]{
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		Items:       items,
	})
}

// Get returns a single product by id.
//
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create creates a product.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
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
		Code:        req.Code,
		CategoryID:  req.CategoryID,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// Update rewrites a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
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
		Code:        req.Code,
		CategoryID:  req.CategoryID,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(updated))
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, _ := auth.IdentityFrom(c)
	if err := h.productService.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
