package repository

import (
	"github.com/iyhunko/inventory-manager/internal/model"
)

const (
	// DefaultPageSize is the number of products shown per page.
	DefaultPageSize = 6
)

// Paginator represents page-number pagination over a filtered collection.
type Paginator struct {
	Page     int
	PageSize int
}

// Page is one slice of a filtered collection together with its position.
type Page struct {
	Items      []*model.Product
	Number     int
	TotalPages int
	Total      int
	// Start and End are the 1-based positions of the first and last item shown.
	Start int
	End   int
}

// NewPaginator returns a paginator on the given page with the default page size.
func NewPaginator(page int) Paginator {
	return Paginator{Page: page, PageSize: DefaultPageSize}
}

func (p Paginator) size() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

// TotalPages returns ceil(total / page size).
func (p Paginator) TotalPages(total int) int {
	size := p.size()
	return (total + size - 1) / size
}

// Clamp returns the page moved into [1, TotalPages]. With no pages at all it
// lands on page 1.
func (p Paginator) Clamp(page, total int) int {
	return max(1, min(page, p.TotalPages(total)))
}

// Apply cuts the page out of items. A page past the end yields no items and
// zero Start and End.
func (p Paginator) Apply(items []*model.Product) Page {
	size := p.size()
	number := max(p.Page, 1)
	total := len(items)

	start := min((number-1)*size, total)
	end := min(start+size, total)

	page := Page{
		Items:      items[start:end],
		Number:     number,
		TotalPages: p.TotalPages(total),
		Total:      total,
	}
	if start < end {
		page.Start = start + 1
		page.End = end
	}
	return page
}

// PageNumbers enumerates every page, 1..totalPages.
func PageNumbers(totalPages int) []int {
	numbers := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		numbers = append(numbers, i)
	}
	return numbers
}
