package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// listResult wraps a paginated collection with its total row count
type listResult struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// listOptionsFromQuery reads the shared search and pagination query
// parameters. Out-of-range values are clamped by the repository layer.
func listOptionsFromQuery(c echo.Context) repository.ListOptions {
	opts := repository.ListOptions{
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		opts.Limit = limit
	}

	return opts
}

// listSuccess renders a paginated collection response
func listSuccess(c echo.Context, items any, total int64, opts repository.ListOptions, message string) error {
	page := opts.Page
	if page < 1 {
		page = 1
	}

	return response.Success(c, http.StatusOK, listResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: opts.Limit,
	}, message)
}
