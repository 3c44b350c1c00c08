package calendar

import "go.mongodb.org/mongo-driver/mongo"

type CalendarContainer struct {
	Handler *Handler
	Service Service
}

func NewCalendarContainer(db *mongo.Database) *CalendarContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &CalendarContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
