package domain

import "math"

const (
	DefaultPerPage = 25
	MaxPerPage     = 100

	// MaxPage keeps Offset from overflowing for any PerPage up to MaxPerPage.
	MaxPage = math.MaxInt / MaxPerPage
)

// PageRequest selects a 1-based page of a newest-first listing.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize clamps the request into a usable range.
func (p PageRequest) Normalize(defaultPerPage int) PageRequest {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	HasNext bool
	HasPrev bool
}

// NextPage returns the next page number, or 0 when there is none.
func (p Page[T]) NextPage() int {
	if !p.HasNext {
		return 0
	}
	return p.Page + 1
}

// PrevPage returns the previous page number, or 0 when there is none.
func (p Page[T]) PrevPage() int {
	if !p.HasPrev {
		return 0
	}
	return p.Page - 1
}

// NewPage builds a page from rows fetched with a limit of PerPage+1; the extra
// row only signals that another page exists and is dropped.
func NewPage[T any](req PageRequest, rows []T) Page[T] {
	hasNext := len(rows) > req.PerPage
	if hasNext {
		rows = rows[:req.PerPage]
	}
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Items:   rows,
		Page:    req.Page,
		PerPage: req.PerPage,
		HasNext: hasNext,
		HasPrev: req.Page > 1,
	}
}
