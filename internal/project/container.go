package project

import "go.mongodb.org/mongo-driver/mongo"

type ProjectContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewProjectContainer(db *mongo.Database) *ProjectContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &ProjectContainer{
		Handler: NewHandler(service),
		Service: service,
		Repo:    repo,
	}
}
