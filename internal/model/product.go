package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product represents an inventory item with its properties.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Description string
}

// Clone returns a copy of the product that shares no state with the original.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}

// Draft returns the form draft pre-populated from the product.
func (p *Product) Draft() Draft {
	return Draft{
		Name:        p.Name,
		Price:       p.Price.String(),
		Category:    p.Category,
		Stock:       strconv.Itoa(p.Stock),
		Description: p.Description,
	}
}
