package achievement

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	Get(ctx context.Context) (*Levels, error)
	Increment(ctx context.Context, field string) (*Levels, error)
	MarkWeek(ctx context.Context, week string) (*Levels, bool, error)
}

type repository struct {
	levels *docstore.Collection[Levels]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{levels: docstore.NewCollection[Levels](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{levels: docstore.Wrap[Levels](coll)}
}

func byUser() bson.M {
	return bson.M{"userId": DefaultUserID}
}

func upsertAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
}

// Get reads the document, creating it with zero levels on first use. The
// upsert makes concurrent first calls converge on one document.
func (r *repository) Get(ctx context.Context) (*Levels, error) {
	return r.levels.FindOneAndUpdate(ctx, byUser(), bson.M{"$setOnInsert": defaults()}, upsertAfter())
}

func (r *repository) Increment(ctx context.Context, field string) (*Levels, error) {
	return r.levels.FindOneAndUpdate(ctx,
		byUser(),
		bson.M{
			"$inc":         bson.M{field: 1},
			"$setOnInsert": defaults(field),
		},
		upsertAfter(),
	)
}

// MarkWeek credits week once. The week check and the increment happen in
// one conditional update, so repeated or concurrent calls for the same week
// add at most one level. The bool reports whether this call credited it.
func (r *repository) MarkWeek(ctx context.Context, week string) (*Levels, bool, error) {
	if _, err := r.Get(ctx); err != nil {
		return nil, false, err
	}

	filter := byUser()
	filter["lastWeeklyWorkoutWeek"] = bson.M{"$ne": week}

	levels, err := r.levels.FindOneAndUpdate(ctx,
		filter,
		bson.M{
			"$inc": bson.M{"workoutsLevel": 1},
			"$set": bson.M{"lastWeeklyWorkoutWeek": week},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err == nil {
		return levels, true, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return nil, false, err
	}

	levels, err = r.levels.FindOne(ctx, byUser())
	if err != nil {
		return nil, false, err
	}
	return levels, false, nil
}
