package repository

import (
	"strings"

	"github.com/iyhunko/inventory-manager/internal/model"
)

const (
	NameField QueryField = "name"
)

type Query struct {
	Values map[QueryField]string
}

type QueryField string

func NewQuery() *Query {
	return &Query{
		Values: map[QueryField]string{},
	}
}

func (q *Query) With(field QueryField, val string) *Query {
	q.Values[field] = val
	return q
}

// Matches reports whether the product satisfies every value of the query.
// The name value matches as a case-insensitive substring.
func (q Query) Matches(product *model.Product) bool {
	if search, ok := q.Values[NameField]; ok && search != "" {
		if !strings.Contains(strings.ToLower(product.Name), strings.ToLower(search)) {
			return false
		}
	}
	return true
}

// Filter keeps the products matching the query, preserving their order.
func Filter(products []*model.Product, query Query) []*model.Product {
	filtered := make([]*model.Product, 0, len(products))
	for _, product := range products {
		if query.Matches(product) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
