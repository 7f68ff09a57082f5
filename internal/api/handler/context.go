package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pageParams reads the page/size query parameters of a listing endpoint.
// Pages are 0-based; size is clamped to maxPageSize.
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
