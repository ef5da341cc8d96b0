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

// BundleHandlerParams holds dependencies for BundleHandler, injected by Fx.
type BundleHandlerParams struct {
	fx.In

	BundleUC       usecase.BundleUsecase
	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// BundleHandler holds dependencies for bundle-related handlers
type BundleHandler struct {
	bundleUC       usecase.BundleUsecase
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewBundleHandler is the constructor for BundleHandler
func NewBundleHandler(params BundleHandlerParams) *BundleHandler {
	return &BundleHandler{
		bundleUC:       params.BundleUC,
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// CreateBundle handles creating a bundle from member products
func (h *BundleHandler) CreateBundle(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req usecase.CreateBundleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bundle, err := h.bundleUC.CreateBundle(c.Request().Context(), adminID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bundle, "Bundle created successfully")
}

// GetBundle handles retrieving a single bundle
func (h *BundleHandler) GetBundle(c echo.Context) error {
	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	bundle, err := h.bundleUC.GetBundle(c.Request().Context(), bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Bundle retrieved successfully")
}

// ListBundles handles retrieving bundles with search and pagination
func (h *BundleHandler) ListBundles(c echo.Context) error {
	opts := listOptionsFromQuery(c)

	bundles, total, err := h.bundleUC.ListBundles(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return listSuccess(c, bundles, total, opts, "Bundles retrieved successfully")
}

// UpdateBundle handles updating a bundle and recomputing its price stack
func (h *BundleHandler) UpdateBundle(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	var req usecase.UpdateBundleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bundle, err := h.bundleUC.UpdateBundle(c.Request().Context(), adminID, bundleID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Bundle updated successfully")
}

// DeleteBundle handles soft-deleting a bundle
func (h *BundleHandler) DeleteBundle(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	if err := h.bundleUC.DeleteBundle(c.Request().Context(), adminID, bundleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bundle deleted"}, "Bundle deleted successfully")
}

// BlockBundle handles blocking a bundle and cascading into carts and wishlists
func (h *BundleHandler) BlockBundle(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	bundle, err := h.availabilityUC.BlockBundle(c.Request().Context(), adminID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Bundle blocked successfully")
}

// UnblockBundle handles unblocking a bundle
func (h *BundleHandler) UnblockBundle(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	bundleID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	bundle, err := h.availabilityUC.UnblockBundle(c.Request().Context(), adminID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Bundle unblocked successfully")
}
