package service

import (
	"github.com/iyhunko/inventory-manager/internal/model"
)

// ViewMode selects how the current page of products is displayed.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether the mode is one of the known display modes.
func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// ModalMode is the lifecycle state of the product form.
type ModalMode string

const (
	ModalClosed ModalMode = "closed"
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
)

const (
	EmptyTitle   = "No products found"
	EmptyMessage = "Try adjusting your search or add a new product"
)

// ModalState is a snapshot of the product form.
type ModalState struct {
	Mode    ModalMode
	Editing *model.Product
	Draft   model.Draft
	Errors  model.FormErrors
}

// Open reports whether the form is shown.
func (s ModalState) Open() bool {
	return s.Mode != ModalClosed
}

// Title is the heading of the form.
func (s ModalState) Title() string {
	if s.Mode == ModalEdit {
		return "Edit Product"
	}
	return "Add New Product"
}

// SubmitLabel is the caption of the submit button.
func (s ModalState) SubmitLabel() string {
	if s.Mode == ModalEdit {
		return "Update Product"
	}
	return "Add Product"
}

// ViewState is everything the presentation needs to draw one screen.
type ViewState struct {
	Products        []*model.Product
	ViewMode        ViewMode
	SearchText      string
	EffectiveSearch string
	SearchPending   bool

	Page       int
	PageSize   int
	TotalPages int
	Total      int
	// Start and End are the 1-based positions shown as "Showing Start to End of Total".
	Start          int
	End            int
	PageNumbers    []int
	HasPrev        bool
	HasNext        bool
	ShowPagination bool
	Empty          bool

	Modal ModalState
}

// SubmitResult is the outcome of submitting the product form.
type SubmitResult struct {
	// Product is the saved product, nil when validation failed.
	Product *model.Product
	Created bool
	Errors  model.FormErrors
	// Modal is the form left open after a failed validation.
	Modal ModalState
}

// Accepted reports whether the draft passed validation and was saved.
func (r *SubmitResult) Accepted() bool {
	return r.Product != nil
}
