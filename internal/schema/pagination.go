package schema

import (
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/validation"
)

const (
	DefaultPageLimit   = 20
	DefaultSearchLimit = 10
	MaxPageLimit       = 100
)

// PaginationInput is read from the query string.
type PaginationInput struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

// Page validates page >= 1 and 1 <= limit <= 100, defaulting to 1 and
// defaultLimit.
func Page(in PaginationInput, defaultLimit int) (domain.Page, error) {
	errs := validation.Errors{}
	page := pageFrom(errs, in, defaultLimit)
	return page, errs.Err()
}

func pageFrom(errs validation.Errors, in PaginationInput, defaultLimit int) domain.Page {
	page := domain.Page{Number: 1, Limit: defaultLimit}

	if n, ok := parseInt(errs, "page", in.Page); ok && n != nil {
		if *n < 1 {
			errs.Add("page", "Must be greater than or equal to 1.")
		} else {
			page.Number = int(*n)
		}
	}
	if n, ok := parseInt(errs, "limit", in.Limit); ok && n != nil {
		if *n < 1 || *n > MaxPageLimit {
			errs.Add("limit", "Must be between 1 and 100.")
		} else {
			page.Limit = int(*n)
		}
	}
	return page
}

// Pagination is the list metadata returned with every page.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

func NewPagination(page domain.Page, total int64) Pagination {
	totalPages := 0
	if page.Limit > 0 {
		totalPages = int((total + int64(page.Limit) - 1) / int64(page.Limit))
	}
	return Pagination{
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       page.Limit,
		HasNext:     page.Number < totalPages,
		HasPrev:     page.Number > 1,
	}
}

// PageOutput is a page of items with its metadata.
type PageOutput[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPageOutput[T any](items []T, page domain.Page, total int64) PageOutput[T] {
	if items == nil {
		items = []T{}
	}
	return PageOutput[T]{Items: items, Pagination: NewPagination(page, total)}
}
