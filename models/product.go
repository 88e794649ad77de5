package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collections are the four fixed backing stores every product belongs to.
var Collections = []string{"CPUs", "GPUs", "RAM", "Storage"}

// Product is the document shape shared by all four collections.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
}

// Validate checks the fields a create must carry.
func (p Product) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// ValidateUpdate checks a partial update body. Only product fields may
// appear; fields absent from the body are left untouched by the update.
func ValidateUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}
	for key, value := range fields {
		switch key {
		case "name":
			s, ok := value.(string)
			if !ok || s == "" {
				return errors.New("name must be a non-empty string")
			}
		case "price":
			n, ok := value.(float64)
			if !ok {
				return errors.New("price must be a number")
			}
			if n < 0 {
				return errors.New("price must not be negative")
			}
		case "image", "description":
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%s must be a string", key)
			}
		default:
			return fmt.Errorf("unknown field %q", key)
		}
	}
	return nil
}
