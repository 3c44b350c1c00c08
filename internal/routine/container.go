package routine

import "go.mongodb.org/mongo-driver/mongo"

type RoutineContainer struct {
	Handler *Handler
	Service Service
}

func NewRoutineContainer(db *mongo.Database) *RoutineContainer {
	service := NewService(NewRepository(db))

	return &RoutineContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
