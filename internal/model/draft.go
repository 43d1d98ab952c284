package model

const (
	// FieldName is the form field holding the product name.
	FieldName = "name"
	// FieldPrice is the form field holding the product price.
	FieldPrice = "price"
	// FieldCategory is the form field holding the product category.
	FieldCategory = "category"
	// FieldStock is the form field holding the stock quantity.
	FieldStock = "stock"
	// FieldDescription is the form field holding the optional description.
	FieldDescription = "description"
)

// Draft is the unvalidated form state of a product, every field kept as typed.
type Draft struct {
	Name        string `json:"name" form:"name"`
	Price       string `json:"price" form:"price"`
	Category    string `json:"category" form:"category"`
	Stock       string `json:"stock" form:"stock"`
	Description string `json:"description" form:"description"`
}

// FormErrors maps a form field to the message shown next to it.
type FormErrors map[string]string

// HasErrors reports whether any field failed validation.
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}
