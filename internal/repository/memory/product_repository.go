package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository"
)

// ProductRepository implements the repository.ProductRepository interface over
// an ordered in-memory slice. Callers only ever see copies of stored products.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*model.Product
	lastID   int64
	now      func() time.Time
}

// Option configures a ProductRepository.
type Option func(*ProductRepository)

// WithClock overrides the time source used to derive new ids.
func WithClock(now func() time.Time) Option {
	return func(r *ProductRepository) {
		r.now = now
	}
}

// NewProductRepository creates a repository holding the seed products in the given order.
func NewProductRepository(seed []model.Product, opts ...Option) *ProductRepository {
	r := &ProductRepository{
		products: make([]*model.Product, 0, len(seed)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	for i := range seed {
		r.products = append(r.products, seed[i].Clone())
		r.lastID = max(r.lastID, seed[i].ID)
	}
	return r
}

// nextID derives an id from the current time in milliseconds, bumped past the
// last issued id so two creations in the same millisecond stay unique.
func (r *ProductRepository) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *ProductRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.products, func(p *model.Product) bool {
		return p.ID == id
	})
}

// Create prepends the product to the collection.
func (r *ProductRepository) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := product.Clone()
	if stored.ID == 0 {
		stored.ID = r.nextID()
	} else if r.indexOf(stored.ID) >= 0 {
		return nil, fmt.Errorf("product %d already exists", stored.ID)
	} else {
		r.lastID = max(r.lastID, stored.ID)
	}

	r.products = slices.Insert(r.products, 0, stored)
	return stored.Clone(), nil
}

// Update replaces the stored product with the same id in place.
func (r *ProductRepository) Update(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(product.ID)
	if idx < 0 {
		return nil, fmt.Errorf("updating product %d: %w", product.ID, repository.ErrProductNotFound)
	}
	r.products[idx] = product.Clone()
	return product.Clone(), nil
}

// DeleteByID removes the product with the given id.
func (r *ProductRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("deleting product %d: %w", id, repository.ErrProductNotFound)
	}
	r.products = slices.Delete(r.products, idx, idx+1)
	return nil
}

// FindByID retrieves a single product by id.
func (r *ProductRepository) FindByID(_ context.Context, id int64) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("finding product %d: %w", id, repository.ErrProductNotFound)
	}
	return r.products[idx].Clone(), nil
}

// List returns copies of the products matching the query in collection order.
func (r *ProductRepository) List(_ context.Context, query repository.Query) ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := repository.Filter(r.products, query)
	result := make([]*model.Product, 0, len(filtered))
	for _, p := range filtered {
		result = append(result, p.Clone())
	}
	return result, nil
}
