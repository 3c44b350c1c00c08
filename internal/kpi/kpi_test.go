package kpi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/personal-lambda/internal/backlog"
	"github.com/saulo-duarte/personal-lambda/internal/calendar"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	"github.com/saulo-duarte/personal-lambda/internal/project"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
	"github.com/saulo-duarte/personal-lambda/internal/workout"
)

type fakeProjects struct {
	projects []project.Project
	err      error
}

func (f fakeProjects) FindAll(context.Context) ([]project.Project, error) { return f.projects, f.err }

type fakeWorkouts struct{ container *workout.Container }

func (f fakeWorkouts) First(context.Context) (*workout.Container, error) { return f.container, nil }

type fakeEvents struct{ events []calendar.Event }

func (f fakeEvents) FindAll(context.Context) ([]calendar.Event, error) { return f.events, nil }

type fakeTasks struct{ tasks []backlog.Task }

func (f fakeTasks) FindAll(context.Context) ([]backlog.Task, error) { return f.tasks, nil }

// wednesday is 2024-03-06 at 10:00 in New York; its week runs 03-04..03-10.
var wednesday = time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC)

func p0(completed string) project.Milestone {
	return project.Milestone{Priority: docstore.NewNumber(0), CompleteDate: completed}
}

func cardio(miles float64) workout.Exercise {
	return workout.Exercise{Category: workout.CategoryCardio, Miles: docstore.NewNumber(miles)}
}

func newTestService(projects []project.Project, c *workout.Container, events []calendar.Event, tasks []backlog.Task) Service {
	return NewService(fakeProjects{projects: projects}, fakeWorkouts{c}, fakeEvents{events}, fakeTasks{tasks}, 6)
}

func TestSnapshotP0CompletedThisWeek(t *testing.T) {
	svc := newTestService(
		[]project.Project{{
			Name:       "Thesis",
			Milestones: map[string]project.Milestone{"Draft": p0("2024-03-06")},
		}},
		nil, nil, nil,
	)

	snap, err := svc.Snapshot(context.Background(), wednesday)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.P0Completed.ThisWeek)
	assert.Equal(t, 0, snap.P0Completed.LastWeek)
}

func TestSnapshot(t *testing.T) {
	projects := []project.Project{
		{Milestones: map[string]project.Milestone{
			"a": p0("2024-03-04"),
			"b": p0("2024-03-03"),
			"c": p0("2024-02-25"),
			"d": {Priority: docstore.NewNumber(1), CompleteDate: "2024-03-05"},
			"e": {CompleteDate: "2024-03-05"},
			"f": p0(""),
		}},
	}
	container := &workout.Container{Workouts: []workout.Workout{
		{Type: workout.TypeSimple, Date: "2024-03-05", Exercises: []workout.Exercise{cardio(2.5), cardio(1)}},
		{Type: workout.TypeSimple, Date: "2024-03-10", Exercises: []workout.Exercise{
			cardio(1),
			{Category: "Strength", Miles: docstore.NewNumber(9)},
		}},
		{Type: workout.TypeSimple, Date: "2024-02-28", Exercises: []workout.Exercise{cardio(3)}},
		{Type: "Push", Date: "2024-03-06", Exercises: []workout.Exercise{cardio(5)}},
	}}
	events := []calendar.Event{
		{Title: "a", Date: "2024-03-04T00:00:00.000Z"},
		{Title: "b", Date: "2024-03-10"},
		{Title: "c", Date: "2024-03-11"},
		{Title: "d"},
	}
	tasks := []backlog.Task{
		{Name: "open"},
		{Name: "done", CompleteDate: "2024-03-01"},
		{Name: "missed", Missed: true},
		{Name: "also open", DueDate: "2030-01-01"},
	}

	snap, err := newTestService(projects, container, events, tasks).Snapshot(context.Background(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, WeekCount{ThisWeek: 1, LastWeek: 1}, snap.P0Completed)
	assert.InDelta(t, 4.5, snap.CardioMiles.ThisWeek, 1e-9)
	assert.InDelta(t, 3.0, snap.CardioMiles.LastWeek, 1e-9)
	assert.Equal(t, 6.0, snap.CardioMiles.Goal)
	assert.Equal(t, 2, snap.EventsThisWeek)
	assert.Equal(t, 2, snap.OpenTasks)
}

func TestSnapshotSundayBelongsToEndingWeek(t *testing.T) {
	sunday := time.Date(2024, time.March, 10, 20, 0, 0, 0, util.Location())
	svc := newTestService(
		[]project.Project{{Milestones: map[string]project.Milestone{"a": p0("2024-03-04")}}},
		nil, nil, nil,
	)

	snap, err := svc.Snapshot(context.Background(), sunday)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.P0Completed.ThisWeek)
}

func TestSnapshotSourceError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(fakeProjects{err: boom}, fakeWorkouts{}, fakeEvents{}, fakeTasks{}, 6)

	_, err := svc.Snapshot(context.Background(), wednesday)
	assert.ErrorIs(t, err, boom)
}

func TestHandlerGet(t *testing.T) {
	svc := newTestService(
		[]project.Project{{Milestones: map[string]project.Milestone{"Draft": p0("2024-03-06")}}},
		&workout.Container{}, nil, []backlog.Task{{Name: "open"}},
	)
	h := NewHandler(svc)
	h.now = func() time.Time { return wednesday }

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"p0Completed": {"thisWeek": 1, "lastWeek": 0},
		"cardioMiles": {"thisWeek": 0, "lastWeek": 0, "goal": 6},
		"eventsThisWeek": 0,
		"openTasks": 1
	}`, rec.Body.String())
}

func TestHandlerGetFailure(t *testing.T) {
	h := NewHandler(NewService(fakeProjects{err: errors.New("down")}, fakeWorkouts{}, fakeEvents{}, fakeTasks{}, 6))

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch KPIs"}`, rec.Body.String())
}
