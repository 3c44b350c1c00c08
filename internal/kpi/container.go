package kpi

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/backlog"
	"github.com/saulo-duarte/personal-lambda/internal/calendar"
	"github.com/saulo-duarte/personal-lambda/internal/project"
	"github.com/saulo-duarte/personal-lambda/internal/workout"
)

type KPIContainer struct {
	Handler *Handler
	Service Service
}

func NewKPIContainer(db *mongo.Database, cardioGoal float64) *KPIContainer {
	service := NewService(
		project.NewRepository(db),
		workout.NewRepository(db),
		calendar.NewRepository(db),
		backlog.NewRepository(db),
		cardioGoal,
	)

	return &KPIContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
