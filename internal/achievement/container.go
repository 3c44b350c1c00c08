package achievement

import "go.mongodb.org/mongo-driver/mongo"

type AchievementContainer struct {
	Handler *Handler
	Service Service
}

func NewAchievementContainer(db *mongo.Database) *AchievementContainer {
	service := NewService(NewRepository(db))

	return &AchievementContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
