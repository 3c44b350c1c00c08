package container

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/personal-lambda/internal/achievement"
	"github.com/saulo-duarte/personal-lambda/internal/backlog"
	"github.com/saulo-duarte/personal-lambda/internal/calendar"
	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/dates"
	"github.com/saulo-duarte/personal-lambda/internal/kpi"
	"github.com/saulo-duarte/personal-lambda/internal/list"
	"github.com/saulo-duarte/personal-lambda/internal/project"
	"github.com/saulo-duarte/personal-lambda/internal/routine"
	"github.com/saulo-duarte/personal-lambda/internal/workout"
)

type Container struct {
	Settings             *config.Settings
	Database             *mongo.Database
	BacklogContainer     *backlog.BacklogContainer
	CalendarContainer    *calendar.CalendarContainer
	RoutineContainer     *routine.RoutineContainer
	ListContainer        *list.ListContainer
	AchievementContainer *achievement.AchievementContainer
	WorkoutContainer     *workout.WorkoutContainer
	ProjectContainer     *project.ProjectContainer
	KPIContainer         *kpi.KPIContainer
	DatesHandler         *dates.Handler
}

// New initializes logging, opens the shared database handle and wires every
// feature against it.
func New(ctx context.Context, settings *config.Settings) (*Container, error) {
	config.Init(settings.Log)

	if err := config.Connect(ctx, settings.Mongo); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	return Build(config.DB, settings), nil
}

// Build wires the feature containers against db without connecting.
func Build(db *mongo.Database, settings *config.Settings) *Container {
	return &Container{
		Settings:             settings,
		Database:             db,
		BacklogContainer:     backlog.NewBacklogContainer(db),
		CalendarContainer:    calendar.NewCalendarContainer(db),
		RoutineContainer:     routine.NewRoutineContainer(db),
		ListContainer:        list.NewListContainer(db),
		AchievementContainer: achievement.NewAchievementContainer(db),
		WorkoutContainer:     workout.NewWorkoutContainer(db),
		ProjectContainer:     project.NewProjectContainer(db),
		KPIContainer:         kpi.NewKPIContainer(db, settings.CardioGoalMiles),
		DatesHandler:         dates.NewHandler(),
	}
}
