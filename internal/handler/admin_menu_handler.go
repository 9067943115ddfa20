package handler

import (
	"net/http"

	"kiosk/internal/config"
	"kiosk/internal/domain/model"
	"kiosk/internal/middleware"
	"kiosk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /admin/menu のHTTP（ADMIN専用）
type AdminMenuHandler struct {
	uc *usecase.MenuUsecase
}

func NewAdminMenuHandler(uc *usecase.MenuUsecase) *AdminMenuHandler {
	return &AdminMenuHandler{uc: uc}
}

type MenuItemRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"` // 10進文字列（"4.50"）
	CategoryID         string `json:"category_id"`
	Available          bool   `json:"is_available"`
	ImagePath          string `json:"image_path"`
	DefaultPortionSize string `json:"default_portion_size"`
}

func (h *AdminMenuHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/menu")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *AdminMenuHandler) create(c echo.Context) error {
	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	out, err := h.uc.Create(c.Request().Context(), model.MenuItem{
		Name:               req.Name,
		Description:        req.Description,
		Price:              price,
		CategoryID:         req.CategoryID,
		Available:          req.Available,
		ImagePath:          req.ImagePath,
		DefaultPortionSize: model.PortionSize(req.DefaultPortionSize),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminMenuHandler) update(c echo.Context) error {
	itemID := c.Param("id")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	out, err := h.uc.Update(c.Request().Context(), model.MenuItem{
		ID:                 itemID,
		Name:               req.Name,
		Description:        req.Description,
		Price:              price,
		CategoryID:         req.CategoryID,
		Available:          req.Available,
		ImagePath:          req.ImagePath,
		DefaultPortionSize: model.PortionSize(req.DefaultPortionSize),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminMenuHandler) delete(c echo.Context) error {
	itemID := c.Param("id")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
