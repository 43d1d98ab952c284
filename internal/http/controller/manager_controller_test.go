package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/inventory-manager/internal/config"
	"github.com/iyhunko/inventory-manager/internal/http/controller"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository/memory"
	"github.com/iyhunko/inventory-manager/internal/service"
	"github.com/iyhunko/inventory-manager/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := service.NewProductManager(memory.NewProductRepository(model.SampleProducts()), nil)
	t.Cleanup(manager.Close)
	ctr := controller.NewManagerController(manager)

	router := gin.New()
	router.GET("/ping", controller.New(&config.Config{}).Ping)
	router.GET("/api/state", ctr.State)
	router.PUT("/api/search", ctr.Search)
	router.POST("/api/search/flush", ctr.FlushSearch)
	router.PUT("/api/view", ctr.SetViewMode)
	router.POST("/api/pages/next", ctr.NextPage)
	router.POST("/api/pages/prev", ctr.PrevPage)
	router.POST("/api/pages/:page", ctr.GoToPage)
	router.POST("/api/modal", ctr.OpenCreate)
	router.DELETE("/api/modal", ctr.CloseModal)
	router.PUT("/api/modal/draft", ctr.UpdateDraft)
	router.POST("/api/modal/submit", ctr.Submit)
	router.POST("/api/modal/:id", ctr.OpenEdit)
	router.GET("/api/products/:id", ctr.GetProduct)
	router.DELETE("/api/products/:id", ctr.DeleteProduct)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestPing(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestState(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/api/state", nil)

	require.Equal(t, http.StatusOK, w.Code)
	state := decode[controller.StateResponse](t, w)
	assert.Len(t, state.Products, 6)
	assert.Equal(t, service.ViewGrid, state.ViewMode)
	assert.Equal(t, 1, state.Pagination.Page)
	assert.Equal(t, 2, state.Pagination.TotalPages)
	assert.Equal(t, []int{1, 2}, state.Pagination.PageNumbers)
	assert.True(t, state.Pagination.Visible)
	assert.Equal(t, service.ModalClosed, state.Modal.Mode)
}

func TestSearch(t *testing.T) {
	router := setupRouter(t)

	// when
	w := do(t, router, http.MethodPut, "/api/search", controller.SearchRequest{Text: "lamp"})

	// then
	require.Equal(t, http.StatusAccepted, w.Code)
	state := decode[controller.StateResponse](t, w)
	assert.Equal(t, "lamp", state.SearchText)
	assert.True(t, state.SearchPending)
	assert.Len(t, state.Products, 6)

	w = do(t, router, http.MethodPost, "/api/search/flush", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode[controller.StateResponse](t, w)
	require.Len(t, state.Products, 1)
	assert.Equal(t, "Desk Lamp", state.Products[0].Name)
	assert.False(t, state.Pagination.Visible)

	w = do(t, router, http.MethodPut, "/api/search", controller.SearchRequest{Text: "zzz"})
	require.Equal(t, http.StatusAccepted, w.Code)
	w = do(t, router, http.MethodPost, "/api/search/flush", nil)
	state = decode[controller.StateResponse](t, w)
	assert.True(t, state.Empty)
	assert.Equal(t, service.EmptyTitle, state.EmptyTitle)
	assert.Equal(t, service.EmptyMessage, state.EmptyMessage)
}

func TestSetViewMode(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"list", controller.ViewModeRequest{Mode: service.ViewList}, http.StatusOK},
		{"grid", controller.ViewModeRequest{Mode: service.ViewGrid}, http.StatusOK},
		{"unknown mode", controller.ViewModeRequest{Mode: "carousel"}, http.StatusBadRequest},
		{"missing mode", map[string]string{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)

			w := do(t, router, http.MethodPut, "/api/view", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantPage   int
	}{
		{"next", "/api/pages/next", http.StatusOK, 2},
		{"prev on first page", "/api/pages/prev", http.StatusOK, 1},
		{"number", "/api/pages/2", http.StatusOK, 2},
		{"number past the end", "/api/pages/9", http.StatusOK, 2},
		{"zero", "/api/pages/0", http.StatusOK, 1},
		{"not a number", "/api/pages/two", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)

			w := do(t, router, http.MethodPost, tt.path, nil)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantPage, decode[controller.StateResponse](t, w).Pagination.Page)
			}
		})
	}
}

func TestModal(t *testing.T) {
	t.Run("create flow", func(t *testing.T) {
		// given
		router := setupRouter(t)
		w := do(t, router, http.MethodPost, "/api/modal", nil)
		require.Equal(t, http.StatusOK, w.Code)
		modal := decode[controller.ModalResponse](t, w)
		assert.Equal(t, service.ModalCreate, modal.Mode)
		assert.Equal(t, "Add New Product", modal.Title)

		// when
		w = do(t, router, http.MethodPut, "/api/modal/draft", model.Draft{Name: "Pen", Price: "1.50", Category: "Office", Stock: "10"})
		require.Equal(t, http.StatusOK, w.Code)
		w = do(t, router, http.MethodPost, "/api/modal/submit", nil)

		// then
		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[controller.SubmitResponse](t, w)
		require.NotNil(t, resp.Product)
		assert.Equal(t, "Pen", resp.Product.Name)
		assert.Equal(t, "1.5", resp.Product.Price.String())
		assert.Equal(t, 10, resp.Product.Stock)

		state := decode[controller.StateResponse](t, do(t, router, http.MethodGet, "/api/state", nil))
		assert.Equal(t, "Pen", state.Products[0].Name)
		assert.Equal(t, 13, state.Pagination.Total)
		assert.Equal(t, service.ModalClosed, state.Modal.Mode)
	})

	t.Run("invalid submit", func(t *testing.T) {
		router := setupRouter(t)
		do(t, router, http.MethodPost, "/api/modal", nil)
		do(t, router, http.MethodPut, "/api/modal/draft", model.Draft{Price: "0"})

		w := do(t, router, http.MethodPost, "/api/modal/submit", nil)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decode[controller.SubmitResponse](t, w)
		assert.Nil(t, resp.Product)
		assert.Equal(t, model.FormErrors{
			model.FieldName:     validation.MsgNameRequired,
			model.FieldPrice:    validation.MsgPriceNotPositive,
			model.FieldCategory: validation.MsgCategoryRequired,
		}, resp.Errors)
		require.NotNil(t, resp.Modal)
		assert.Equal(t, service.ModalCreate, resp.Modal.Mode)
	})

	t.Run("edit flow", func(t *testing.T) {
		router := setupRouter(t)
		w := do(t, router, http.MethodPost, "/api/modal/8", nil)
		require.Equal(t, http.StatusOK, w.Code)
		modal := decode[controller.ModalResponse](t, w)
		require.NotNil(t, modal.EditingID)
		assert.Equal(t, int64(8), *modal.EditingID)
		assert.Equal(t, "Desk Lamp", modal.Draft.Name)
		assert.Equal(t, "Update Product", modal.SubmitLabel)

		draft := modal.Draft
		draft.Stock = "41"
		do(t, router, http.MethodPut, "/api/modal/draft", draft)
		w = do(t, router, http.MethodPost, "/api/modal/submit", nil)

		require.Equal(t, http.StatusOK, w.Code)
		w = do(t, router, http.MethodGet, "/api/products/8", nil)
		assert.Equal(t, 41, decode[controller.ProductResponse](t, w).Stock)
	})

	t.Run("cancel", func(t *testing.T) {
		router := setupRouter(t)
		do(t, router, http.MethodPost, "/api/modal/8", nil)

		w := do(t, router, http.MethodDelete, "/api/modal", nil)

		require.Equal(t, http.StatusOK, w.Code)
		modal := decode[controller.ModalResponse](t, w)
		assert.Equal(t, service.ModalClosed, modal.Mode)
		assert.Equal(t, model.Draft{}, modal.Draft)
	})

	t.Run("errors", func(t *testing.T) {
		router := setupRouter(t)

		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/api/modal/404", nil).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/api/modal/abc", nil).Code)
		assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPut, "/api/modal/draft", model.Draft{}).Code)
		assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, "/api/modal/submit", nil).Code)
	})
}

func TestGetProduct(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/api/products/2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	product := decode[controller.ProductResponse](t, w)
	assert.Equal(t, "Smart Watch", product.Name)
	assert.Equal(t, "199.99", product.Price.String())

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/products/99", nil).Code)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		router := setupRouter(t)

		w := do(t, router, http.MethodDelete, "/api/products/3", nil)

		assert.Equal(t, http.StatusPreconditionRequired, w.Code)
		assert.Contains(t, w.Body.String(), service.DeletePrompt)
		assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/products/3", nil).Code)
	})

	t.Run("declined", func(t *testing.T) {
		router := setupRouter(t)

		w := do(t, router, http.MethodDelete, "/api/products/3?confirm=false", nil)

		assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	})

	t.Run("confirmed", func(t *testing.T) {
		router := setupRouter(t)

		w := do(t, router, http.MethodDelete, "/api/products/3?confirm=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/products/3", nil).Code)
		state := decode[controller.StateResponse](t, do(t, router, http.MethodGet, "/api/state", nil))
		assert.Equal(t, 11, state.Pagination.Total)
	})

	t.Run("unknown product", func(t *testing.T) {
		router := setupRouter(t)

		w := do(t, router, http.MethodDelete, "/api/products/77?confirm=true", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router := setupRouter(t)

		w := do(t, router, http.MethodDelete, "/api/products/x?confirm=true", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
