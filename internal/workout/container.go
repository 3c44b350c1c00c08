package workout

import "go.mongodb.org/mongo-driver/mongo"

type WorkoutContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewWorkoutContainer(db *mongo.Database) *WorkoutContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &WorkoutContainer{
		Handler: NewHandler(service),
		Service: service,
		Repo:    repo,
	}
}
