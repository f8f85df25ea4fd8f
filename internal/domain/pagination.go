package domain

import "math"

// maxPage наибольшая страница, для которой смещение не переполняет int
const maxPage = math.MaxInt/MaxPageLimit + 1

// Page нормализует параметры пагинации: page не меньше 1,
// limit в диапазоне [1, MaxPageLimit], 0 означает DefaultPageLimit.
func Page(page, limit int) (normPage, normLimit, offset int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit < 1:
		limit = 1
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return page, limit, (page - 1) * limit
}
