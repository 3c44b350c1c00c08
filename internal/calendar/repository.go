package calendar

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Event, error)
	Insert(ctx context.Context, e *Event) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, patch UpdateEventDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type repository struct {
	events *docstore.Collection[Event]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{events: docstore.NewCollection[Event](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{events: docstore.Wrap[Event](coll)}
}

func (r *repository) FindAll(ctx context.Context) ([]Event, error) {
	return r.events.FindAll(ctx)
}

func (r *repository) Insert(ctx context.Context, e *Event) (*docstore.InsertResult, error) {
	return r.events.Insert(ctx, e)
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateEventDTO) (*docstore.UpdateResult, error) {
	return r.events.UpdateByID(ctx, id, patch)
}

func (r *repository) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	return r.events.DeleteByID(ctx, id)
}
