package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrEmptyPatch = errors.New("update contains no fields")
)

// Collection wraps one logical collection whose documents decode into T.
// Reads are unfiltered and unpaginated unless a caller passes a filter.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func Wrap[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	return c.Find(ctx, bson.M{})
}

func (c *Collection[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindSorted returns at most limit documents ordered on field.
func (c *Collection[T]) FindSorted(ctx context.Context, field string, descending bool, limit int64) ([]T, error) {
	order := 1
	if descending {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: order}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return c.Find(ctx, bson.M{}, opts)
}

func (c *Collection[T]) FindOne(ctx context.Context, filter interface{}) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindOneAndUpdate returns the document as options select it, before or
// after the update. Nothing matched is ErrNotFound.
func (c *Collection[T]) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*T, error) {
	var doc T
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) (*InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

// UpdateByID applies patch with $set semantics to the document whose _id is
// id. A zero match is reported through MatchedCount, not as an error.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, patch interface{}) (*UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set, err := SetFields(patch)
	if err != nil {
		return nil, err
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Collection[T]) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Collection[T]) UpdateMany(ctx context.Context, filter, update interface{}) (*UpdateResult, error) {
	res, err := c.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

// DeleteByID removes the document whose _id is id. Deleting nothing is not
// an error.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return c.DeleteOne(ctx, bson.M{"_id": oid})
}

func (c *Collection[T]) DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}

// SetFields renders a typed patch as the body of a $set. Nil pointer fields
// tagged omitempty drop out, and _id is always removed so an update can
// never rewrite a document's identity.
func SetFields(patch interface{}) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	delete(set, "_id")

	if len(set) == 0 {
		return nil, ErrEmptyPatch
	}
	return set, nil
}

// EnsureUniqueIndex creates a unique ascending index on field and returns
// its name. Creating an index that already exists is a no-op.
func (c *Collection[T]) EnsureUniqueIndex(ctx context.Context, field string) (string, error) {
	return c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}
