package handler

import (
	"net/http"

	"kiosk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /menu, /categories の公開API（認証不要）
type MenuHandler struct {
	menuUC     *usecase.MenuUsecase
	categoryUC *usecase.CategoryUsecase
}

// DI
func NewMenuHandler(menuUC *usecase.MenuUsecase, categoryUC *usecase.CategoryUsecase) *MenuHandler {
	return &MenuHandler{menuUC: menuUC, categoryUC: categoryUC}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
	e.GET("/menu/:id", h.detail)
	e.GET("/categories", h.listCategories)
	e.GET("/categories/:id/menu", h.listByCategory)
}

func (h *MenuHandler) list(c echo.Context) error {
	out, err := h.menuUC.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) detail(c echo.Context) error {
	itemID := c.Param("id")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.menuUC.Get(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) listCategories(c echo.Context) error {
	out, err := h.categoryUC.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) listByCategory(c echo.Context) error {
	categoryID := c.Param("id")
	out, err := h.menuUC.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
