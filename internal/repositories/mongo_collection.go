package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCollection holds the document plumbing shared by the MongoDB repositories.
// Documents keep their ID as the hex form of an ObjectID stored in _id.
type mongoCollection[T any] struct {
	name string
	coll *mongo.Collection
	id   func(*T) *string
}

func newMongoCollection[T any](db *mongo.Database, collection, name string, id func(*T) *string) *mongoCollection[T] {
	return &mongoCollection[T]{
		name: name,
		coll: db.Collection(collection),
		id:   id,
	}
}

func (c *mongoCollection[T]) find(filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	ctx := context.Background()
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", c.name, err)
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", c.name, err)
	}
	return docs, nil
}

func (c *mongoCollection[T]) findOne(filter bson.M, describe string) (*T, error) {
	var doc T
	err := c.coll.FindOne(context.Background(), filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s with %s: %w", c.name, describe, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by %s: %w", c.name, describe, err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) get(id string) (*T, error) {
	return c.findOne(bson.M{"_id": id}, "ID "+id)
}

func (c *mongoCollection[T]) insert(doc *T) error {
	id := c.id(doc)
	if *id == "" {
		*id = primitive.NewObjectID().Hex()
	}
	if _, err := c.coll.InsertOne(context.Background(), doc); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.name, err)
	}
	return nil
}

func (c *mongoCollection[T]) replace(doc *T) error {
	id := *c.id(doc)
	res, err := c.coll.ReplaceOne(context.Background(), bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", c.name, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s with ID %s for update: %w", c.name, id, ErrNotFound)
	}
	return nil
}

func (c *mongoCollection[T]) remove(id string) error {
	res, err := c.coll.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", c.name, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s with ID %s for deletion: %w", c.name, id, ErrNotFound)
	}
	return nil
}
