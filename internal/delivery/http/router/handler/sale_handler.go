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

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler holds dependencies for sale campaign handlers
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// AddSaleProductsRequest represents the request body for enrolling products
// into a sale
type AddSaleProductsRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" validate:"required,min=1"`
}

// AddSaleBundlesRequest represents the request body for enrolling bundles
// into a sale
type AddSaleBundlesRequest struct {
	BundleIDs []uuid.UUID `json:"bundle_ids" validate:"required,min=1"`
}

// CreateSale handles creating a sale campaign
func (h *SaleHandler) CreateSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req usecase.CreateSaleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sale, err := h.saleUC.CreateSale(c.Request().Context(), adminID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale created successfully")
}

// GetSale handles retrieving a single sale
func (h *SaleHandler) GetSale(c echo.Context) error {
	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	sale, err := h.saleUC.GetSale(c.Request().Context(), saleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale retrieved successfully")
}

// ListSales handles retrieving sales with search and pagination
func (h *SaleHandler) ListSales(c echo.Context) error {
	opts := listOptionsFromQuery(c)

	sales, total, err := h.saleUC.ListSales(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return listSuccess(c, sales, total, opts, "Sales retrieved successfully")
}

// UpdateSale handles updating a sale and rewriting derived prices
func (h *SaleHandler) UpdateSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	var req usecase.UpdateSaleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sale, err := h.saleUC.UpdateSale(c.Request().Context(), adminID, saleID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale updated successfully")
}

// AddProductsToSale handles enrolling products into a sale
func (h *SaleHandler) AddProductsToSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	var req AddSaleProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.saleUC.AddProductsToSale(c.Request().Context(), adminID, saleID, req.ProductIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Products added to sale successfully")
}

// AddBundlesToSale handles enrolling bundles into a sale
func (h *SaleHandler) AddBundlesToSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	var req AddSaleBundlesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.saleUC.AddBundlesToSale(c.Request().Context(), adminID, saleID, req.BundleIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Bundles added to sale successfully")
}

// RemoveProductFromSale handles detaching one product from a sale
func (h *SaleHandler) RemoveProductFromSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.saleUC.RemoveProductFromSale(c.Request().Context(), adminID, saleID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product removed from sale successfully")
}

// RemoveCategoryFromSale handles dropping a category from a sale's scope
func (h *SaleHandler) RemoveCategoryFromSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	sale, err := h.saleUC.RemoveCategoryFromSale(c.Request().Context(), adminID, saleID, categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale, "Category removed from sale successfully")
}

// DeleteSale handles soft-deleting a sale and tearing down its stamps
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	saleID, err := uuid.Parse(c.Param("saleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	if err := h.saleUC.DeleteSale(c.Request().Context(), adminID, saleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sale deleted"}, "Sale deleted successfully")
}
