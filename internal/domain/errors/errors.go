package errors

import (
	"net/http"

	"backoffice/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrProductGone = NewBaseError(
		http.StatusGone,
		"PRODUCT_GONE",
		"該商品已下架",
		"",
	)

	ErrAlreadyBlocked = NewBaseError(
		http.StatusConflict,
		"ALREADY_BLOCKED",
		"該項目已被封鎖",
		"",
	)

	ErrNotBlocked = NewBaseError(
		http.StatusConflict,
		"NOT_BLOCKED",
		"該項目尚未被封鎖",
		"",
	)

	// Bundle-related errors
	ErrBundleNotFound = NewBaseError(
		http.StatusNotFound,
		"BUNDLE_NOT_FOUND",
		"找不到該組合包",
		"",
	)

	ErrBundleGone = NewBaseError(
		http.StatusGone,
		"BUNDLE_GONE",
		"該組合包已下架",
		"",
	)

	ErrBundleEmpty = NewBaseError(
		http.StatusBadRequest,
		"BUNDLE_EMPTY",
		"組合包必須包含至少一項商品",
		"",
	)

	// Discount-related errors
	ErrDiscountNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_NOT_FOUND",
		"找不到該折扣",
		"",
	)

	ErrDiscountGone = NewBaseError(
		http.StatusGone,
		"DISCOUNT_GONE",
		"該折扣已被刪除",
		"",
	)

	// Modifier lifecycle errors shared by discounts and sales
	ErrDuplicateEnrollment = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ENROLLMENT",
		"部分項目已註冊於此折扣或特賣",
		"",
	)

	ErrModifierMismatch = NewBaseError(
		http.StatusConflict,
		"MODIFIER_MISMATCH",
		"該項目套用的折扣或特賣與指定不符",
		"",
	)

	ErrModifierLocked = NewBaseError(
		http.StatusConflict,
		"MODIFIER_LOCKED",
		"該折扣或特賣已套用，無法修改註冊名單",
		"",
	)

	ErrTargetsUnavailable = NewBaseError(
		http.StatusConflict,
		"TARGETS_UNAVAILABLE",
		"部分項目已停用或已被封鎖",
		"",
	)

	ErrPercentOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"PERCENT_OUT_OF_RANGE",
		"折扣百分比必須介於 0 到 100 之間",
		"",
	)

	ErrInvalidDiscountType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT_TYPE",
		"無效的折扣類型",
		"",
	)

	ErrInvalidDateWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_WINDOW",
		"結束時間必須晚於開始時間",
		"",
	)

	// Sale-related errors
	ErrSaleNotFound = NewBaseError(
		http.StatusNotFound,
		"SALE_NOT_FOUND",
		"找不到該特賣活動",
		"",
	)

	ErrSaleGone = NewBaseError(
		http.StatusGone,
		"SALE_GONE",
		"該特賣活動已被刪除",
		"",
	)

	ErrSaleNotApplied = NewBaseError(
		http.StatusConflict,
		"SALE_NOT_APPLIED",
		"該特賣活動尚未套用",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"找不到該分類",
		"",
	)

	ErrCategoryGone = NewBaseError(
		http.StatusGone,
		"CATEGORY_GONE",
		"該分類已被刪除",
		"",
	)

	// Admin authentication-related errors
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"找不到該管理員",
		"",
	)

	ErrAdminInactive = NewBaseError(
		http.StatusForbidden,
		"ADMIN_INACTIVE",
		"該管理員帳號已停用",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效或已過期的存取權杖",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Pricing-related errors
	ErrPriceComputationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRICE_COMPUTATION_FAILED",
		"價格計算失敗",
		"",
	)

	ErrCascadePartial = NewBaseError(
		http.StatusInternalServerError,
		"CASCADE_PARTIAL",
		"連鎖更新僅部分完成，請人工核對",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
