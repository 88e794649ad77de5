package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jolteer/pc-store/models"
)

// MemoryCatalog is an in-memory Catalog with the same observable semantics
// as the Mongo-backed one. Handler tests run against it.
type MemoryCatalog struct {
	mu    sync.Mutex
	items map[string][]models.Product
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{items: make(map[string][]models.Product)}
}

func (s *MemoryCatalog) Insert(_ context.Context, collection string, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = primitive.NewObjectID()
	s.items[collection] = append(s.items[collection], p)
	return p, nil
}

func (s *MemoryCatalog) List(_ context.Context, collection string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.items[collection]))
	copy(out, s.items[collection])
	return out, nil
}

func (s *MemoryCatalog) Get(_ context.Context, collection, id string) (models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items[collection] {
		if p.ID == objID {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryCatalog) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.items[collection]
	for i := range list {
		if list[i].ID != objID {
			continue
		}
		for key, value := range fields {
			switch key {
			case "name":
				if v, ok := value.(string); ok {
					list[i].Name = v
				}
			case "price":
				if v, ok := value.(float64); ok {
					list[i].Price = v
				}
			case "image":
				if v, ok := value.(string); ok {
					list[i].Image = v
				}
			case "description":
				if v, ok := value.(string); ok {
					list[i].Description = v
				}
			}
		}
		return nil
	}
	return ErrNotFound
}

func (s *MemoryCatalog) Delete(_ context.Context, collection, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.items[collection]
	for i := range list {
		if list[i].ID == objID {
			s.items[collection] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
