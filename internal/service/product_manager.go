package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iyhunko/inventory-manager/internal/debounce"
	"github.com/iyhunko/inventory-manager/internal/metrics"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository"
	"github.com/iyhunko/inventory-manager/internal/sqs"
	"github.com/iyhunko/inventory-manager/internal/validation"
)

// DeletePrompt is the question asked before a product is removed.
const DeletePrompt = "Are you sure you want to delete this product?"

var (
	// ErrModalClosed is returned for form actions while the form is not open.
	ErrModalClosed = errors.New("product form is not open")
	// ErrInvalidViewMode is returned for a view mode other than grid or list.
	ErrInvalidViewMode = errors.New("invalid view mode")
)

// EventPublisher publishes product change notifications.
type EventPublisher interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

// Confirmer answers a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// ProductManager holds the product collection together with every piece of
// interaction state: search text, current page, view mode and the product
// form. All transitions are serialized by one mutex, the debounced search
// callback included.
type ProductManager struct {
	mu        sync.Mutex
	repo      repository.ProductRepository
	publisher EventPublisher
	debouncer *debounce.Debouncer

	searchText      string
	effectiveSearch string
	currentPage     int
	viewMode        ViewMode

	modal      ModalMode
	editing    *model.Product
	draft      model.Draft
	formErrors model.FormErrors
}

// Option configures a ProductManager.
type Option func(*options)

type options struct {
	debounce  time.Duration
	afterFunc debounce.AfterFunc
}

// WithSearchDebounce sets how long the search text has to stay unchanged
// before it filters the collection.
func WithSearchDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithAfterFunc replaces the timer used for the search debounce.
func WithAfterFunc(fn debounce.AfterFunc) Option {
	return func(o *options) {
		o.afterFunc = fn
	}
}

// NewProductManager creates a manager over repo. publisher may be nil, in
// which case no notifications are sent.
func NewProductManager(repo repository.ProductRepository, publisher EventPublisher, opts ...Option) *ProductManager {
	o := options{debounce: 500 * time.Millisecond}
	for _, opt := range opts {
		opt(&o)
	}
	var debounceOpts []debounce.Option
	if o.afterFunc != nil {
		debounceOpts = append(debounceOpts, debounce.WithAfterFunc(o.afterFunc))
	}

	return &ProductManager{
		repo:        repo,
		publisher:   publisher,
		debouncer:   debounce.New(o.debounce, debounceOpts...),
		currentPage: 1,
		viewMode:    ViewGrid,
		modal:       ModalClosed,
		formErrors:  model.FormErrors{},
	}
}

// Close drops a pending search so its timer never fires.
func (m *ProductManager) Close() {
	m.debouncer.Stop()
}

// SearchDebounce returns how long the search text has to stay unchanged.
func (m *ProductManager) SearchDebounce() time.Duration {
	return m.debouncer.Delay()
}

// Search records a keystroke in the search box. The text starts filtering
// only after the debounce interval passes without another keystroke, and
// then the view returns to the first page.
func (m *ProductManager) Search(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.searchText = text
	m.debouncer.Trigger(func() {
		m.applySearch(text)
	})
}

func (m *ProductManager) applySearch(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.effectiveSearch = text
	m.currentPage = 1
	metrics.SearchesApplied.Inc()
	slog.Debug("search applied", slog.String("search", text))
}

// FlushSearch applies a pending search right away and reports whether there was one.
func (m *ProductManager) FlushSearch() bool {
	return m.debouncer.Flush()
}

// SetViewMode switches between the grid and the list display.
func (m *ProductManager) SetViewMode(mode ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewMode = mode
	return nil
}

func (m *ProductManager) filteredLocked(ctx context.Context) ([]*model.Product, error) {
	query := repository.NewQuery().With(repository.NameField, m.effectiveSearch)
	products, err := m.repo.List(ctx, *query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GoToPage moves to the given page, clamped into the available pages.
func (m *ProductManager) GoToPage(ctx context.Context, page int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.goToPageLocked(ctx, page)
}

func (m *ProductManager) goToPageLocked(ctx context.Context, page int) (int, error) {
	filtered, err := m.filteredLocked(ctx)
	if err != nil {
		return m.currentPage, err
	}
	m.currentPage = repository.NewPaginator(m.currentPage).Clamp(page, len(filtered))
	return m.currentPage, nil
}

// NextPage moves one page forward, staying on the last page.
func (m *ProductManager) NextPage(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.goToPageLocked(ctx, m.currentPage+1)
}

// PrevPage moves one page back, staying on the first page.
func (m *ProductManager) PrevPage(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.goToPageLocked(ctx, m.currentPage-1)
}

// View computes what is on screen from the current state.
func (m *ProductManager) View(ctx context.Context) (*ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered, err := m.filteredLocked(ctx)
	if err != nil {
		return nil, err
	}
	page := repository.NewPaginator(m.currentPage).Apply(filtered)

	return &ViewState{
		Products:        page.Items,
		ViewMode:        m.viewMode,
		SearchText:      m.searchText,
		EffectiveSearch: m.effectiveSearch,
		SearchPending:   m.debouncer.Pending(),
		Page:            page.Number,
		PageSize:        repository.DefaultPageSize,
		TotalPages:      page.TotalPages,
		Total:           page.Total,
		Start:           page.Start,
		End:             page.End,
		PageNumbers:     repository.PageNumbers(page.TotalPages),
		HasPrev:         page.Number > 1,
		HasNext:         page.Number < page.TotalPages,
		ShowPagination:  page.TotalPages > 1,
		Empty:           len(page.Items) == 0,
		Modal:           m.modalLocked(),
	}, nil
}

// Products returns the whole collection in order, ignoring search and pagination.
func (m *ProductManager) Products(ctx context.Context) ([]*model.Product, error) {
	return m.repo.List(ctx, *repository.NewQuery())
}

// Product returns a single product.
func (m *ProductManager) Product(ctx context.Context, id int64) (*model.Product, error) {
	return m.repo.FindByID(ctx, id)
}

// Modal returns the state of the product form.
func (m *ProductManager) Modal() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modalLocked()
}

func (m *ProductManager) modalLocked() ModalState {
	state := ModalState{
		Mode:   m.modal,
		Draft:  m.draft,
		Errors: make(model.FormErrors, len(m.formErrors)),
	}
	for field, msg := range m.formErrors {
		state.Errors[field] = msg
	}
	if m.editing != nil {
		state.Editing = m.editing.Clone()
	}
	return state
}

// OpenCreate opens an empty form for a new product.
func (m *ProductManager) OpenCreate() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetFormLocked()
	m.modal = ModalCreate
	return m.modalLocked()
}

// OpenEdit opens the form pre-filled with the product's values.
func (m *ProductManager) OpenEdit(ctx context.Context, id int64) (ModalState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return m.modalLocked(), err
	}

	m.resetFormLocked()
	m.modal = ModalEdit
	m.editing = product
	m.draft = product.Draft()
	return m.modalLocked(), nil
}

// UpdateDraft replaces the form fields while the form is open.
func (m *ProductManager) UpdateDraft(draft model.Draft) (ModalState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.modal == ModalClosed {
		return m.modalLocked(), ErrModalClosed
	}
	m.draft = draft
	return m.modalLocked(), nil
}

// CloseModal closes the form and forgets its draft and errors.
func (m *ProductManager) CloseModal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetFormLocked()
}

func (m *ProductManager) resetFormLocked() {
	m.modal = ModalClosed
	m.editing = nil
	m.draft = model.Draft{}
	m.formErrors = model.FormErrors{}
}

// Submit validates the draft. A failing draft keeps the form open with its
// errors. A valid one creates a product, or replaces the edited one, and
// closes the form.
func (m *ProductManager) Submit(ctx context.Context) (*SubmitResult, error) {
	m.mu.Lock()

	if m.modal == ModalClosed {
		m.mu.Unlock()
		return nil, ErrModalClosed
	}

	formErrors := validation.Validate(m.draft)
	m.formErrors = formErrors
	if formErrors.HasErrors() {
		for field := range formErrors {
			metrics.FormValidationFailures.WithLabelValues(field).Inc()
		}
		result := &SubmitResult{Errors: formErrors, Modal: m.modalLocked()}
		m.mu.Unlock()
		return result, nil
	}

	product := validation.ToProduct(m.draft)
	var (
		saved  *model.Product
		action string
		err    error
	)
	if m.modal == ModalEdit {
		product.ID = m.editing.ID
		saved, err = m.repo.Update(ctx, &product)
		action = sqs.ActionUpdated
	} else {
		saved, err = m.repo.Create(ctx, &product)
		action = sqs.ActionCreated
	}
	if err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	m.resetFormLocked()
	m.mu.Unlock()

	if action == sqs.ActionCreated {
		metrics.ProductsCreated.Inc()
	} else {
		metrics.ProductsUpdated.Inc()
	}
	slog.Info("product saved", slog.String("action", action), slog.Int64("product_id", saved.ID))
	m.notify(ctx, action, saved)

	return &SubmitResult{
		Product: saved,
		Created: action == sqs.ActionCreated,
		Errors:  model.FormErrors{},
	}, nil
}

// Delete asks confirmer whether to remove the product and removes it on yes.
// It reports whether the product was removed.
func (m *ProductManager) Delete(ctx context.Context, id int64, confirmer Confirmer) (bool, error) {
	if !confirmer.Confirm(DeletePrompt) {
		return false, nil
	}

	m.mu.Lock()
	product, err := m.repo.FindByID(ctx, id)
	if err == nil {
		err = m.repo.DeleteByID(ctx, id)
	}
	m.mu.Unlock()
	if err != nil {
		return false, err
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.Int64("product_id", id))
	m.notify(ctx, sqs.ActionDeleted, product)
	return true, nil
}

func (m *ProductManager) notify(ctx context.Context, action string, product *model.Product) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.PublishProductMessage(ctx, sqs.NewProductMessage(action, product)); err != nil {
		// Log error but don't fail the user action
		metrics.NotificationFailures.Inc()
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.Int64("product_id", product.ID))
	}
}
