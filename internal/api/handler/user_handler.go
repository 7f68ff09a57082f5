package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// UserHandler handles admin-only user management endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN USER admin user"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// List returns a page of users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[userResponse]
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	result, err := h.userService.FindAll(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	items := make([]userResponse, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, ports.Page[userResponse]{
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		Items:       items,
	})
}

// Get returns a single user by id.
//
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update rewrites a user account.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User ID"
// @Param        body  body      userRequest  true  "User details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := auth.IdentityFrom(c)
	updated, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes a user account.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, _ := auth.IdentityFrom(c)
	if err := h.userService.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
