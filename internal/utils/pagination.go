package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxPageLimit caps how many integration log rows one admin page can return.
const MaxPageLimit = 100

// Pagination is the page window of an admin listing plus the totals reported back.
type Pagination struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// GetPagination reads ?page= and ?limit=. Values that are missing, malformed or
// below 1 fall back to the defaults, and limit never exceeds MaxPageLimit.
func GetPagination(c *fiber.Ctx, defaultPage, defaultLimit int) Pagination {
	page := queryInt(c, "page", defaultPage)
	limit := min(queryInt(c, "limit", defaultLimit), MaxPageLimit)

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// SetTotal records the unpaged row count and derives the last page from it.
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// PaginatedResponse is the body of GET /admin/integration-logs.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewPaginatedResponse(data interface{}, pagination Pagination) PaginatedResponse {
	return PaginatedResponse{
		Data:       data,
		Pagination: pagination,
	}
}
