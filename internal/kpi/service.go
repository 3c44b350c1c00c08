package kpi

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/personal-lambda/internal/backlog"
	"github.com/saulo-duarte/personal-lambda/internal/calendar"
	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/project"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
	"github.com/saulo-duarte/personal-lambda/internal/workout"
)

type ProjectReader interface {
	FindAll(ctx context.Context) ([]project.Project, error)
}

type WorkoutReader interface {
	First(ctx context.Context) (*workout.Container, error)
}

type EventReader interface {
	FindAll(ctx context.Context) ([]calendar.Event, error)
}

type TaskReader interface {
	FindAll(ctx context.Context) ([]backlog.Task, error)
}

type Service interface {
	Snapshot(ctx context.Context, now time.Time) (*Snapshot, error)
}

type service struct {
	projects   ProjectReader
	workouts   WorkoutReader
	events     EventReader
	tasks      TaskReader
	cardioGoal float64
}

func NewService(projects ProjectReader, workouts WorkoutReader, events EventReader, tasks TaskReader, cardioGoal float64) Service {
	return &service{
		projects:   projects,
		workouts:   workouts,
		events:     events,
		tasks:      tasks,
		cardioGoal: cardioGoal,
	}
}

// Snapshot reads the four collections concurrently and reduces them against
// the week containing now and the week before it.
func (s *service) Snapshot(ctx context.Context, now time.Time) (*Snapshot, error) {
	log := config.WithContext(ctx)

	var (
		projects  []project.Project
		container *workout.Container
		events    []calendar.Event
		tasks     []backlog.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projects.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		container, err = s.workouts.First(gctx)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.events.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load KPI sources")
		return nil, err
	}

	thisWeek := util.WeekBounds(now)
	lastWeek := thisWeek.Previous()

	snap := &Snapshot{
		P0Completed:    p0Completed(projects, thisWeek, lastWeek),
		CardioMiles:    cardioMiles(container, thisWeek, lastWeek),
		EventsThisWeek: eventsIn(events, thisWeek),
		OpenTasks:      openTasks(tasks),
	}
	snap.CardioMiles.Goal = s.cardioGoal
	return snap, nil
}

func p0Completed(projects []project.Project, thisWeek, lastWeek util.Week) WeekCount {
	var c WeekCount
	for _, p := range projects {
		for _, m := range p.Milestones {
			if !m.IsP0() {
				continue
			}
			switch {
			case m.CompletedIn(thisWeek):
				c.ThisWeek++
			case m.CompletedIn(lastWeek):
				c.LastWeek++
			}
		}
	}
	return c
}

func cardioMiles(container *workout.Container, thisWeek, lastWeek util.Week) CardioMiles {
	var miles CardioMiles
	if container == nil {
		return miles
	}
	for _, w := range workout.Simple(container.Workouts) {
		var sum float64
		for _, ex := range w.Exercises {
			sum += ex.CardioMiles()
		}
		switch {
		case thisWeek.Contains(w.Date):
			miles.ThisWeek += sum
		case lastWeek.Contains(w.Date):
			miles.LastWeek += sum
		}
	}
	return miles
}

func eventsIn(events []calendar.Event, w util.Week) int {
	n := 0
	for _, e := range events {
		if e.InWeek(w) {
			n++
		}
	}
	return n
}

func openTasks(tasks []backlog.Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsOpen() {
			n++
		}
	}
	return n
}
