package list

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

var (
	ErrListNotFound       = errors.New("list not found")
	ErrListExists         = errors.New("list already exists")
	ErrItemNotFound       = errors.New("item not found")
	ErrListOrItemNotFound = errors.New("list or item not found")
)

type Repository interface {
	FindAll(ctx context.Context) ([]List, error)
	FindByName(ctx context.Context, name string) (*List, error)
	Insert(ctx context.Context, l *List) (*docstore.InsertResult, error)
	DeleteByName(ctx context.Context, name string) (*docstore.DeleteResult, error)
	SetParent(ctx context.Context, name string, parent *string) (*docstore.UpdateResult, error)
	PushItems(ctx context.Context, name string, items []Item) (*docstore.UpdateResult, error)
	UpdateItem(ctx context.Context, name string, ref ItemRef, updates ItemPatch) (*docstore.UpdateResult, error)
	DeleteItem(ctx context.Context, name string, ref ItemRef) (*docstore.UpdateResult, error)
	BackfillParents(ctx context.Context) (*docstore.UpdateResult, error)
}

type repository struct {
	lists *docstore.Collection[List]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{lists: docstore.NewCollection[List](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{lists: docstore.Wrap[List](coll)}
}

func (r *repository) FindAll(ctx context.Context) ([]List, error) {
	return r.lists.FindAll(ctx)
}

func (r *repository) FindByName(ctx context.Context, name string) (*List, error) {
	l, err := r.lists.FindOne(ctx, bson.M{"name": name})
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrListNotFound
	}
	return l, err
}

// Insert reports a unique-index violation on name as ErrListExists.
func (r *repository) Insert(ctx context.Context, l *List) (*docstore.InsertResult, error) {
	res, err := r.lists.Insert(ctx, l)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrListExists
	}
	return res, err
}

func (r *repository) DeleteByName(ctx context.Context, name string) (*docstore.DeleteResult, error) {
	res, err := r.lists.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, ErrListNotFound
	}
	return res, nil
}

func (r *repository) SetParent(ctx context.Context, name string, parent *string) (*docstore.UpdateResult, error) {
	res, err := r.lists.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": bson.M{"parent": parent}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListNotFound
	}
	return res, nil
}

func (r *repository) PushItems(ctx context.Context, name string, items []Item) (*docstore.UpdateResult, error) {
	docs := make(bson.A, 0, len(items))
	for _, it := range items {
		docs = append(docs, it.fields())
	}

	res, err := r.lists.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"list": bson.M{"$each": docs}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListNotFound
	}
	return res, nil
}

// UpdateItem sets only the fields present in updates on the item addressed
// by id or name, keeping its id. Index addressing replaces the whole element,
// which is the only way to upgrade a bare string item into a document.
func (r *repository) UpdateItem(ctx context.Context, name string, ref ItemRef, updates ItemPatch) (*docstore.UpdateResult, error) {
	if ref.ID == "" && ref.Name == "" && ref.Index != nil {
		return r.replaceAt(ctx, name, *ref.Index, updates)
	}

	filter := bson.M{"name": name}
	if ref.ID != "" {
		filter["list.id"] = ref.ID
	} else {
		filter["list.name"] = ref.Name
	}

	set := updates.set("list.$.")
	if len(set) == 0 {
		return nil, docstore.ErrEmptyPatch
	}

	res, err := r.lists.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListOrItemNotFound
	}
	return res, nil
}

func (r *repository) replaceAt(ctx context.Context, name string, index int, updates ItemPatch) (*docstore.UpdateResult, error) {
	path := fmt.Sprintf("list.%d", index)
	res, err := r.lists.UpdateOne(ctx,
		bson.M{"name": name, path: bson.M{"$exists": true}},
		bson.M{"$set": bson.M{path: updates.Item().fields()}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListOrItemNotFound
	}
	return res, nil
}

// DeleteItem removes the addressed item. Removing an id or name the list
// does not contain is not an error; only a missing list is.
func (r *repository) DeleteItem(ctx context.Context, name string, ref ItemRef) (*docstore.UpdateResult, error) {
	var update interface{}
	switch {
	case ref.ID != "":
		update = bson.M{"$pull": bson.M{"list": bson.M{"id": ref.ID}}}
	case ref.Name != "":
		// Bare string items match on the value itself.
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"list": bson.M{"$filter": bson.M{
					"input": "$list",
					"cond": bson.M{"$and": bson.A{
						bson.M{"$ne": bson.A{"$$this", ref.Name}},
						bson.M{"$ne": bson.A{"$$this.name", ref.Name}},
					}},
				}},
			}}},
		}
	default:
		return r.deleteAt(ctx, name, *ref.Index)
	}

	res, err := r.lists.UpdateOne(ctx, bson.M{"name": name}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListNotFound
	}
	return res, nil
}

// deleteAt splices one element out in a single pipeline update, so no
// placeholder is left behind between two writes.
func (r *repository) deleteAt(ctx context.Context, name string, index int) (*docstore.UpdateResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"list": bson.M{"$concatArrays": bson.A{
				bson.M{"$slice": bson.A{"$list", index}},
				bson.M{"$slice": bson.A{"$list", index + 1, bson.M{"$max": bson.A{1, bson.M{"$size": "$list"}}}}},
			}},
		}}},
	}

	res, err := r.lists.UpdateOne(ctx, bson.M{"name": name}, pipeline)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrListNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, ErrItemNotFound
	}
	return res, nil
}

func (r *repository) BackfillParents(ctx context.Context) (*docstore.UpdateResult, error) {
	return r.lists.UpdateMany(ctx,
		bson.M{"parent": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"parent": nil}},
	)
}
