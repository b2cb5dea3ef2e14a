package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"swolez-api/internal/models"
)

// ErrInvalidStoredProduct is returned when a stored document no longer
// satisfies the product schema. It is a server fault, not a client one.
var ErrInvalidStoredProduct = errors.New("stored product is invalid")

type ProductRepository struct {
	store *DocumentStore
}

func NewProductRepository(store *DocumentStore) *ProductRepository {
	return &ProductRepository{
		store: store,
	}
}

// Create inserts an already validated product.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (string, error) {
	return r.store.Insert(ctx, models.ProductCollection, product)
}

// List returns the products matching every filter that is set. Each stored
// document goes through the strict schema; one bad document fails the call.
func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	docs, err := r.store.Query(ctx, models.ProductCollection, BuildProductFilter(filter))
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := models.ProductFromDocument(doc)
		if err != nil {
			// %v: the cause must not unwrap to a client validation error.
			return nil, fmt.Errorf("%w: %v: %v", ErrInvalidStoredProduct, doc["_id"], err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Seed inserts the first count built-in samples and returns how many were created.
func (r *ProductRepository) Seed(ctx context.Context, count int) (int, error) {
	if !r.store.Available() {
		return 0, ErrStoreUnavailable
	}

	samples := models.SampleProducts()
	switch {
	case count < 0:
		count = 0
	case count > len(samples):
		count = len(samples)
	}

	created := 0
	for _, s := range samples[:count] {
		p, err := models.ValidateProductCreate(s)
		if err != nil {
			return created, fmt.Errorf("sample %q: %w", *s.Title, err)
		}
		if _, err := r.store.Insert(ctx, models.ProductCollection, p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// BuildProductFilter translates the optional filters into a conjunctive
// equality query.
func BuildProductFilter(f models.ProductFilter) bson.M {
	filter := bson.M{}
	if f.Line != "" {
		filter["line"] = f.Line
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	return filter
}
