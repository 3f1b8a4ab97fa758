package pagination

import (
	"errors"
	"strconv"
)

const DefaultLimit = 10

var (
	ErrNotANumber = errors.New("page and limit must be integers")
	ErrNegative   = errors.New("page and limit must not be negative")
)

// Page is a zero-based page request. Skip is Page*Limit, so page 0 always
// starts from the first document regardless of limit.
type Page struct {
	Page  int
	Limit int
}

// FromQuery parses page/limit query values strictly. Empty strings fall back
// to page 0 and the default limit; anything non-numeric or negative is an
// error rather than a silent zero.
func FromQuery(pageStr, limitStr string) (*Page, error) {
	page := 0
	limit := DefaultLimit

	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, ErrNotANumber
		}
		page = n
	}

	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, ErrNotANumber
		}
		limit = n
	}

	if page < 0 || limit < 0 {
		return nil, ErrNegative
	}

	return &Page{Page: page, Limit: limit}, nil
}

// Skip returns the offset for database queries
func (p *Page) Skip() int64 {
	return int64(p.Page) * int64(p.Limit)
}

// GetLimit returns the limit for database queries
func (p *Page) GetLimit() int64 {
	return int64(p.Limit)
}
