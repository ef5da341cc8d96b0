package postgres

import (
	"backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// applyListOptions adds the shared search filter of the listing endpoints.
func applyListOptions(query *gorm.DB, opts repository.ListOptions) *gorm.DB {
	if opts.Search != "" {
		query = query.Where("name ILIKE ?", "%"+opts.Search+"%")
	}

	return query
}

// applyListPage adds ordering and pagination. Sort is by creation time,
// ascending unless "desc" is requested.
func applyListPage(query *gorm.DB, opts repository.ListOptions) *gorm.DB {
	order := "created_at ASC"
	if opts.Sort == "desc" {
		order = "created_at DESC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}

	return query.Order(order).Limit(limit).Offset((page - 1) * limit)
}
