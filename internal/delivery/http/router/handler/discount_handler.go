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

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler holds dependencies for discount-related handlers
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// ApplyDiscountRequest represents the request body for enrolling targets
// into a discount
type ApplyDiscountRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
	BundleIDs  []uuid.UUID `json:"bundle_ids"`
}

// CreateDiscount handles creating a discount modifier
func (h *DiscountHandler) CreateDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req usecase.CreateDiscountInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	discount, err := h.discountUC.CreateDiscount(c.Request().Context(), adminID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount created successfully")
}

// GetDiscount handles retrieving a single discount
func (h *DiscountHandler) GetDiscount(c echo.Context) error {
	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	discount, err := h.discountUC.GetDiscount(c.Request().Context(), discountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount, "Discount retrieved successfully")
}

// ListDiscounts handles retrieving discounts with search and pagination
func (h *DiscountHandler) ListDiscounts(c echo.Context) error {
	opts := listOptionsFromQuery(c)

	discounts, total, err := h.discountUC.ListDiscounts(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return listSuccess(c, discounts, total, opts, "Discounts retrieved successfully")
}

// UpdateDiscount handles updating a discount and rewriting derived prices
func (h *DiscountHandler) UpdateDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	var req usecase.UpdateDiscountInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	discount, err := h.discountUC.UpdateDiscount(c.Request().Context(), adminID, discountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount, "Discount updated successfully")
}

// ApplyDiscount handles enrolling products and bundles into a discount
func (h *DiscountHandler) ApplyDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	var req ApplyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	result, err := h.discountUC.ApplyDiscount(c.Request().Context(), adminID, discountID, req.ProductIDs, req.BundleIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Discount applied successfully")
}

// RemoveProductFromDiscount handles detaching one product from a discount
func (h *DiscountHandler) RemoveProductFromDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.discountUC.RemoveProductFromDiscount(c.Request().Context(), adminID, discountID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product removed from discount successfully")
}

// RemoveBundleFromDiscount handles detaching one bundle from a discount
func (h *DiscountHandler) RemoveBundleFromDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	bundle, err := h.discountUC.RemoveBundleFromDiscount(c.Request().Context(), adminID, discountID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Bundle removed from discount successfully")
}

// DeleteDiscount handles soft-deleting a discount and tearing down its stamps
func (h *DiscountHandler) DeleteDiscount(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	discountID, err := uuid.Parse(c.Param("discountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	if err := h.discountUC.DeleteDiscount(c.Request().Context(), adminID, discountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Discount deleted"}, "Discount deleted successfully")
}
