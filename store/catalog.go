package store

import (
	"context"
	"errors"

	"github.com/jolteer/pc-store/models"
)

// ErrNotFound reports that no document matched the requested id.
var ErrNotFound = errors.New("item not found")

// Catalog is the persistence surface behind the product CRUD handlers. Every
// operation addresses one of the fixed collections by name.
type Catalog interface {
	Insert(ctx context.Context, collection string, p models.Product) (models.Product, error)
	List(ctx context.Context, collection string) ([]models.Product, error)
	Get(ctx context.Context, collection, id string) (models.Product, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
}
