package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC      usecase.ProductUsecase
	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC      usecase.ProductUsecase
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:      params.ProductUC,
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// GetProduct handles retrieving a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles retrieving products with search and pagination
func (h *ProductHandler) ListProducts(c echo.Context) error {
	opts := listOptionsFromQuery(c)

	products, total, err := h.productUC.ListProducts(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return listSuccess(c, products, total, opts, "Products retrieved successfully")
}

// BlockProduct handles blocking a product and cascading the unavailability
func (h *ProductHandler) BlockProduct(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.availabilityUC.BlockProduct(c.Request().Context(), adminID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product blocked successfully")
}

// UnblockProduct handles unblocking a product
func (h *ProductHandler) UnblockProduct(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.availabilityUC.UnblockProduct(c.Request().Context(), adminID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product unblocked successfully")
}
