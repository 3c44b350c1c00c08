package routine

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Routine, error)
	FindRecent(ctx context.Context, limit int64) ([]Routine, error)
	Insert(ctx context.Context, r *Routine) error
	Update(ctx context.Context, id string, patch UpdateRoutineDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type repository struct {
	routines *docstore.Collection[Routine]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{routines: docstore.NewCollection[Routine](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{routines: docstore.Wrap[Routine](coll)}
}

func (r *repository) FindAll(ctx context.Context) ([]Routine, error) {
	return r.routines.FindAll(ctx)
}

func (r *repository) FindRecent(ctx context.Context, limit int64) ([]Routine, error) {
	return r.routines.FindSorted(ctx, "Date", true, limit)
}

func (r *repository) Insert(ctx context.Context, routine *Routine) error {
	_, err := r.routines.Insert(ctx, routine)
	return err
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateRoutineDTO) (*docstore.UpdateResult, error) {
	return r.routines.UpdateByID(ctx, id, patch)
}

func (r *repository) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	return r.routines.DeleteByID(ctx, id)
}
