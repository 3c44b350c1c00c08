package list

import "go.mongodb.org/mongo-driver/mongo"

type ListContainer struct {
	Handler *Handler
	Service Service
}

func NewListContainer(db *mongo.Database) *ListContainer {
	service := NewService(NewRepository(db))

	return &ListContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
