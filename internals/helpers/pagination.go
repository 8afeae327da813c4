// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultLimit int
	MaxLimit     int
}

// ===== Presets =====
var DefaultPageOpts = PageOptions{DefaultLimit: 10, MaxLimit: 100}

type PageParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string // asc|desc
}

// ParsePage reads page/limit/sortBy/sortDir with the default preset.
func ParsePage(c *fiber.Ctx, defaultSortBy, defaultSortDir string) PageParams {
	return ParsePageWith(c, defaultSortBy, defaultSortDir, DefaultPageOpts)
}

func ParsePageWith(c *fiber.Ctx, defaultSortBy, defaultSortDir string, opt PageOptions) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := atoiDefault(c.Query("limit"), opt.DefaultLimit)
	if limit < 1 {
		limit = opt.DefaultLimit
	}
	if opt.MaxLimit > 0 && limit > opt.MaxLimit {
		limit = opt.MaxLimit
	}

	sortBy := strings.TrimSpace(c.Query("sortBy"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortDir := strings.ToLower(strings.TrimSpace(c.Query("sortDir")))
	if sortDir != "asc" && sortDir != "desc" {
		sortDir = defaultSortDir
	}

	return PageParams{Page: page, Limit: limit, SortBy: sortBy, SortDir: sortDir}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
