package backlog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Task, error)
	Insert(ctx context.Context, t *Task) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, patch UpdateTaskDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
	MarkMissed(ctx context.Context, today string) (*docstore.UpdateResult, error)
	RenameSession(ctx context.Context, session string, size Size) (*docstore.UpdateResult, error)
	DefaultSize(ctx context.Context, size Size) (*docstore.UpdateResult, error)
}

type repository struct {
	tasks *docstore.Collection[Task]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{tasks: docstore.NewCollection[Task](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{tasks: docstore.Wrap[Task](coll)}
}

func (r *repository) FindAll(ctx context.Context) ([]Task, error) {
	return r.tasks.FindAll(ctx)
}

func (r *repository) Insert(ctx context.Context, t *Task) (*docstore.InsertResult, error) {
	return r.tasks.Insert(ctx, t)
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateTaskDTO) (*docstore.UpdateResult, error) {
	return r.tasks.UpdateByID(ctx, id, patch)
}

func (r *repository) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	return r.tasks.DeleteByID(ctx, id)
}

func (r *repository) MarkMissed(ctx context.Context, today string) (*docstore.UpdateResult, error) {
	return r.tasks.UpdateMany(ctx, MissedFilter(today), bson.M{"$set": bson.M{"Missed": true}})
}

func (r *repository) RenameSession(ctx context.Context, session string, size Size) (*docstore.UpdateResult, error) {
	return r.tasks.UpdateMany(ctx,
		bson.M{"Session": session},
		bson.M{
			"$set":   bson.M{"Size": size},
			"$unset": bson.M{"Session": ""},
		},
	)
}

func (r *repository) DefaultSize(ctx context.Context, size Size) (*docstore.UpdateResult, error) {
	return r.tasks.UpdateMany(ctx,
		bson.M{"Session": bson.M{"$exists": false}, "Size": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"Size": size}},
	)
}

// MissedFilter selects tasks due before today that have no completion date
// and are not flagged yet. Tasks without a due date never match.
func MissedFilter(today string) bson.M {
	return bson.M{
		"Due Date":      bson.M{"$lt": today, "$gt": ""},
		"Complete Date": bson.M{"$in": bson.A{nil, ""}},
		"Missed":        bson.M{"$ne": true},
	}
}
