package backlog

import "go.mongodb.org/mongo-driver/mongo"

type BacklogContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewBacklogContainer(db *mongo.Database) *BacklogContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &BacklogContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
