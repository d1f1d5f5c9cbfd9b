package repositories

import "gorm.io/gorm"

// paginate applies offset/limit with sane defaults (page 1, 20 rows, max 100).
func paginate(query *gorm.DB, page, limit int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return query.Offset((page - 1) * limit).Limit(limit)
}
