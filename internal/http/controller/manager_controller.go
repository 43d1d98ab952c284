package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository"
	"github.com/iyhunko/inventory-manager/internal/service"
)

// IndexTemplate is the name of the page template.
const IndexTemplate = "index.html"

// ManagerController turns HTTP requests into user events on the product manager.
type ManagerController struct {
	manager *service.ProductManager
}

// NewManagerController creates a new ManagerController over the given manager.
func NewManagerController(manager *service.ProductManager) *ManagerController {
	return &ManagerController{
		manager: manager,
	}
}

// SearchRequest represents a keystroke in the search box.
type SearchRequest struct {
	Text string `json:"text"`
}

// ViewModeRequest represents the grid/list toggle.
type ViewModeRequest struct {
	Mode service.ViewMode `json:"mode" binding:"required"`
}

// ProductURI binds the product id from the path.
type ProductURI struct {
	ID int64 `uri:"id" binding:"required"`
}

// PageURI binds the page number from the path.
type PageURI struct {
	Page int `uri:"page"`
}

// DeleteProductRequest carries the answer to the delete confirmation.
type DeleteProductRequest struct {
	Confirm bool `form:"confirm"`
}

// IndexPage is the data the page template renders.
type IndexPage struct {
	View             *service.ViewState
	EmptyTitle       string
	EmptyMessage     string
	DeletePrompt     string
	SearchDebounceMs int64
}

// Index renders the page.
func (mc *ManagerController) Index(c *gin.Context) {
	view, err := mc.manager.View(c.Request.Context())
	if err != nil {
		mc.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, IndexTemplate, IndexPage{
		View:             view,
		EmptyTitle:       service.EmptyTitle,
		EmptyMessage:     service.EmptyMessage,
		DeletePrompt:     service.DeletePrompt,
		SearchDebounceMs: mc.manager.SearchDebounce().Milliseconds(),
	})
}

// State returns what is currently on screen.
func (mc *ManagerController) State(c *gin.Context) {
	mc.respondState(c, http.StatusOK)
}

// Search records a keystroke. The filter follows once the debounce passes.
func (mc *ManagerController) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.manager.Search(req.Text)
	mc.respondState(c, http.StatusAccepted)
}

// FlushSearch applies a pending search right away.
func (mc *ManagerController) FlushSearch(c *gin.Context) {
	mc.manager.FlushSearch()
	mc.respondState(c, http.StatusOK)
}

// SetViewMode switches between grid and list.
func (mc *ManagerController) SetViewMode(c *gin.Context) {
	var req ViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.manager.SetViewMode(req.Mode); err != nil {
		mc.fail(c, err)
		return
	}
	mc.respondState(c, http.StatusOK)
}

// GoToPage handles a page number button.
func (mc *ManagerController) GoToPage(c *gin.Context) {
	var uri PageURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page number"})
		return
	}

	if _, err := mc.manager.GoToPage(c.Request.Context(), uri.Page); err != nil {
		mc.fail(c, err)
		return
	}
	mc.respondState(c, http.StatusOK)
}

// NextPage handles the next button.
func (mc *ManagerController) NextPage(c *gin.Context) {
	if _, err := mc.manager.NextPage(c.Request.Context()); err != nil {
		mc.fail(c, err)
		return
	}
	mc.respondState(c, http.StatusOK)
}

// PrevPage handles the previous button.
func (mc *ManagerController) PrevPage(c *gin.Context) {
	if _, err := mc.manager.PrevPage(c.Request.Context()); err != nil {
		mc.fail(c, err)
		return
	}
	mc.respondState(c, http.StatusOK)
}

// OpenCreate opens an empty product form.
func (mc *ManagerController) OpenCreate(c *gin.Context) {
	c.JSON(http.StatusOK, toModalResponse(mc.manager.OpenCreate()))
}

// OpenEdit opens the product form for an existing product.
func (mc *ManagerController) OpenEdit(c *gin.Context) {
	var uri ProductURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	modal, err := mc.manager.OpenEdit(c.Request.Context(), uri.ID)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toModalResponse(modal))
}

// UpdateDraft replaces the form fields.
func (mc *ManagerController) UpdateDraft(c *gin.Context) {
	var draft model.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modal, err := mc.manager.UpdateDraft(draft)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toModalResponse(modal))
}

// Submit validates the form and saves the product.
func (mc *ManagerController) Submit(c *gin.Context) {
	result, err := mc.manager.Submit(c.Request.Context())
	if err != nil {
		mc.fail(c, err)
		return
	}

	if !result.Accepted() {
		modal := toModalResponse(result.Modal)
		c.JSON(http.StatusUnprocessableEntity, SubmitResponse{Errors: result.Errors, Modal: &modal})
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	product := toProductResponse(result.Product)
	c.JSON(status, SubmitResponse{Product: &product, Errors: result.Errors})
}

// CloseModal cancels the product form.
func (mc *ManagerController) CloseModal(c *gin.Context) {
	mc.manager.CloseModal()
	c.JSON(http.StatusOK, toModalResponse(mc.manager.Modal()))
}

// GetProduct returns a single product.
func (mc *ManagerController) GetProduct(c *gin.Context) {
	var uri ProductURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, err := mc.manager.Product(c.Request.Context(), uri.ID)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct removes a product once the request carries confirm=true.
// Without it the prompt is returned and nothing changes.
func (mc *ManagerController) DeleteProduct(c *gin.Context) {
	var uri ProductURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	var req DeleteProductRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := mc.manager.Delete(c.Request.Context(), uri.ID, service.ConfirmFunc(func(string) bool {
		return req.Confirm
	}))
	if err != nil {
		mc.fail(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"error":  "confirmation required",
			"prompt": service.DeletePrompt,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

func (mc *ManagerController) respondState(c *gin.Context, status int) {
	view, err := mc.manager.View(c.Request.Context())
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(status, toStateResponse(view))
}

func (mc *ManagerController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, service.ErrModalClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidViewMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", slog.String("path", c.FullPath()), slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
