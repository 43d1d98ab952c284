// Package validation turns a product form draft into field errors and,
// once valid, into product values.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/shopspring/decimal"
)

const (
	MsgNameRequired     = "Product name is required"
	MsgPriceNotPositive = "Price must be a positive number"
	MsgCategoryRequired = "Category is required"
	MsgStockNegative    = "Stock cannot be negative"
)

// formRules holds the coerced draft values the rules are checked against.
type formRules struct {
	Name     string          `validate:"required"`
	Price    decimal.Decimal `validate:"gt=0"`
	Category string          `validate:"required"`
	Stock    int             `validate:"gte=0"`
}

var fieldErrors = map[string]struct {
	field   string
	message string
}{
	"Name":     {model.FieldName, MsgNameRequired},
	"Price":    {model.FieldPrice, MsgPriceNotPositive},
	"Category": {model.FieldCategory, MsgCategoryRequired},
	"Stock":    {model.FieldStock, MsgStockNegative},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func rulesFor(draft model.Draft) formRules {
	// unparsable price stays zero and fails gt=0
	price, _ := ParsePrice(draft.Price)
	return formRules{
		Name:     strings.TrimSpace(draft.Name),
		Price:    price,
		Category: strings.TrimSpace(draft.Category),
		Stock:    CoerceStock(draft.Stock),
	}
}

// Validate checks the draft and returns one message per failing field. An
// empty map means the draft can be submitted. Stock that does not parse is
// not an error; only an explicit negative number is.
func Validate(draft model.Draft) model.FormErrors {
	errs := model.FormErrors{}

	err := validate.Struct(rulesFor(draft))
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// only reachable on a programming error in formRules
		panic(err)
	}
	for _, fe := range validationErrs {
		if mapped, ok := fieldErrors[fe.StructField()]; ok {
			errs[mapped.field] = mapped.message
		}
	}
	return errs
}

// ToProduct builds the product values out of a validated draft. The id is
// left to the caller.
func ToProduct(draft model.Draft) model.Product {
	price, _ := ParsePrice(draft.Price)
	return model.Product{
		Name:        draft.Name,
		Price:       price,
		Category:    draft.Category,
		Stock:       CoerceStock(draft.Stock),
		Description: draft.Description,
	}
}
