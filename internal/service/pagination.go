package service

import "math"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	// maxPage keeps (page-1)*limit inside an int32 row offset.
	maxPage = math.MaxInt32 / maxPageLimit
)

// normalizePage clamps page and limit and returns the matching row offset.
func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return page, limit, (page - 1) * limit
}
