package domain

import "fmt"

const (
	minPageSize = 1
	maxPageSize = 50
)

// PageQuery is a validated pagination request for the owned/assigned task
// listings.
type PageQuery struct {
	Page int
	Size int
}

func NewPageQuery(page, size int) (PageQuery, error) {
	if page < 1 {
		return PageQuery{}, &Error{KindValidation, fmt.Sprintf("page must be at least 1, got %d", page)}
	}
	if size < minPageSize || size > maxPageSize {
		return PageQuery{}, &Error{KindValidation, fmt.Sprintf("page size must be in range %d and %d inclusive, got %d", minPageSize, maxPageSize, size)}
	}
	return PageQuery{Page: page, Size: size}, nil
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// PaginatedTasks pairs one page of summaries with the total match count.
type PaginatedTasks struct {
	Items []TaskSummary
	Total int64
}
