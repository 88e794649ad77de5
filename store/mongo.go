package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jolteer/pc-store/models"
)

// MongoCatalog stores products in one MongoDB collection per category.
type MongoCatalog struct {
	db *mongo.Database
}

func NewMongoCatalog(client *mongo.Client, dbName string) *MongoCatalog {
	return &MongoCatalog{db: client.Database(dbName)}
}

func (s *MongoCatalog) Insert(ctx context.Context, collection string, p models.Product) (models.Product, error) {
	p.ID = primitive.NewObjectID()
	if _, err := s.db.Collection(collection).InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *MongoCatalog) List(ctx context.Context, collection string) ([]models.Product, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get looks up one document by id. A malformed id is a plain lookup failure,
// not ErrNotFound.
func (s *MongoCatalog) Get(ctx context.Context, collection, id string) (models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update merges the given fields into the stored document with $set; fields
// absent from the map stay untouched.
func (s *MongoCatalog) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCatalog) Delete(ctx context.Context, collection, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
