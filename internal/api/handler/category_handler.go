package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
}

// List returns a page of categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[categoryResponse]
// @Failure      401   {object}  map[string]string
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	result, err := h.categoryService.FindAll(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	items := make([]categoryResponse, 0, len(result.Items))
	for _, cat := range result.Items {
		items = append(items, *toCategoryResponse(cat))
	}
	return c.JSON(http.StatusOK, ports.Page[categoryResponse]{
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		Items:       items,
	})
}

// Get returns a single category by id.
//
// @Summary      Get category by ID
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create creates a category.
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := auth.IdentityFrom(c)
	created, err := h.categoryService.Create(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// Update rewrites a category.
//
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := auth.IdentityFrom(c)
	updated, err := h.categoryService.Update(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCategoryResponse(updated))
}

// Delete removes a category.
//
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	actor, _ := auth.IdentityFrom(c)
	if err := h.categoryService.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
