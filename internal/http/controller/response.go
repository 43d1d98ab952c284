package controller

import (
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/service"
	"github.com/shopspring/decimal"
)

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
}

// ModalResponse represents the product form.
type ModalResponse struct {
	Mode        service.ModalMode `json:"mode"`
	Title       string            `json:"title"`
	SubmitLabel string            `json:"submit_label"`
	EditingID   *int64            `json:"editing_id,omitempty"`
	Draft       model.Draft       `json:"draft"`
	Errors      model.FormErrors  `json:"errors"`
}

// PaginationResponse describes the page controls.
type PaginationResponse struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	Total       int   `json:"total"`
	Start       int   `json:"start"`
	End         int   `json:"end"`
	PageNumbers []int `json:"page_numbers"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
	Visible     bool  `json:"visible"`
}

// StateResponse represents everything currently on screen.
type StateResponse struct {
	Products        []ProductResponse  `json:"products"`
	ViewMode        service.ViewMode   `json:"view_mode"`
	SearchText      string             `json:"search_text"`
	EffectiveSearch string             `json:"effective_search"`
	SearchPending   bool               `json:"search_pending"`
	Pagination      PaginationResponse `json:"pagination"`
	Empty           bool               `json:"empty"`
	EmptyTitle      string             `json:"empty_title,omitempty"`
	EmptyMessage    string             `json:"empty_message,omitempty"`
	Modal           ModalResponse      `json:"modal"`
}

// SubmitResponse is returned after submitting the product form.
type SubmitResponse struct {
	Product *ProductResponse `json:"product,omitempty"`
	Errors  model.FormErrors `json:"errors"`
	Modal   *ModalResponse   `json:"modal,omitempty"`
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Category:    product.Category,
		Stock:       product.Stock,
		Description: product.Description,
	}
}

func toModalResponse(modal service.ModalState) ModalResponse {
	resp := ModalResponse{
		Mode:        modal.Mode,
		Title:       modal.Title(),
		SubmitLabel: modal.SubmitLabel(),
		Draft:       modal.Draft,
		Errors:      modal.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = model.FormErrors{}
	}
	if modal.Editing != nil {
		id := modal.Editing.ID
		resp.EditingID = &id
	}
	return resp
}

func toStateResponse(view *service.ViewState) StateResponse {
	products := make([]ProductResponse, 0, len(view.Products))
	for _, p := range view.Products {
		products = append(products, toProductResponse(p))
	}

	resp := StateResponse{
		Products:        products,
		ViewMode:        view.ViewMode,
		SearchText:      view.SearchText,
		EffectiveSearch: view.EffectiveSearch,
		SearchPending:   view.SearchPending,
		Pagination: PaginationResponse{
			Page:        view.Page,
			PageSize:    view.PageSize,
			TotalPages:  view.TotalPages,
			Total:       view.Total,
			Start:       view.Start,
			End:         view.End,
			PageNumbers: view.PageNumbers,
			HasPrev:     view.HasPrev,
			HasNext:     view.HasNext,
			Visible:     view.ShowPagination,
		},
		Empty: view.Empty,
		Modal: toModalResponse(view.Modal),
	}
	if view.Empty {
		resp.EmptyTitle = service.EmptyTitle
		resp.EmptyMessage = service.EmptyMessage
	}
	return resp
}
