package project

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Project, error)
	Insert(ctx context.Context, p *Project) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, patch UpdateProjectDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type repository struct {
	projects *docstore.Collection[Project]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{projects: docstore.NewCollection[Project](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{projects: docstore.Wrap[Project](coll)}
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	return r.projects.FindAll(ctx)
}

func (r *repository) Insert(ctx context.Context, p *Project) (*docstore.InsertResult, error) {
	return r.projects.Insert(ctx, p)
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateProjectDTO) (*docstore.UpdateResult, error) {
	return r.projects.UpdateByID(ctx, id, patch)
}

func (r *repository) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	return r.projects.DeleteByID(ctx, id)
}
