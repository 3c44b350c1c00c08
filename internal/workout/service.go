package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

var (
	ErrInvalidWorkout = errors.New("invalid workout")
	ErrDateRequired   = errors.New("date is required")
)

type Service interface {
	List(ctx context.Context) ([]Container, error)
	Create(ctx context.Context, c *Container) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, dto UpdateContainerDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)

	Today(ctx context.Context) ([]Workout, error)
	OnDate(ctx context.Context, date string) ([]Workout, error)
	SetExercises(ctx context.Context, date string, exercises []Exercise) (*docstore.UpdateResult, error)

	Simple(ctx context.Context) ([]Workout, error)
	SimpleByDate(ctx context.Context, date string) (*Workout, error)
	AddExercise(ctx context.Context, date string, ex Exercise) (*docstore.UpdateResult, error)
	DeleteExercise(ctx context.Context, date, exerciseID string) (*docstore.UpdateResult, error)
	DeleteSimpleWorkout(ctx context.Context, date string) (*docstore.UpdateResult, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]Container, error) {
	containers, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list workouts")
		return nil, err
	}
	return containers, nil
}

func (s *service) Create(ctx context.Context, c *Container) (*docstore.InsertResult, error) {
	log := config.WithContext(ctx)

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Workouts == nil {
		c.Workouts = []Workout{}
	}

	res, err := s.repo.Insert(ctx, c)
	if err != nil {
		log.WithError(err).Error("Failed to create workout container")
		return nil, err
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateContainerDTO) (*docstore.UpdateResult, error) {
	res, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		config.WithContext(ctx).WithField("container_id", id).WithError(err).Error("Failed to update workout container")
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithField("container_id", id).WithError(err).Error("Failed to delete workout container")
		return nil, err
	}
	return res, nil
}

func (s *service) Today(ctx context.Context) ([]Workout, error) {
	return s.OnDate(ctx, util.Today(s.now()))
}

// OnDate lists every entry of date, simple or structured.
func (s *service) OnDate(ctx context.Context, date string) ([]Workout, error) {
	c, err := s.repo.First(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch workouts")
		return nil, err
	}

	out := make([]Workout, 0)
	for _, w := range c.Workouts {
		if w.On(date) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *service) SetExercises(ctx context.Context, date string, exercises []Exercise) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("date", date)

	if err := checkDate(date); err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID.IsZero() {
			exercises[i].ID = primitive.NewObjectID()
		}
	}

	res, err := s.repo.SetExercises(ctx, date, exercises)
	if err != nil {
		log.WithError(err).Error("Failed to update workout")
		return nil, err
	}

	log.WithField("matched", res.MatchedCount).Info("Workout exercises updated")
	return res, nil
}

func (s *service) Simple(ctx context.Context) ([]Workout, error) {
	c, err := s.repo.First(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch simple workouts")
		return nil, err
	}
	return Simple(c.Workouts), nil
}

// SimpleByDate returns nil without error when date has no simple workout.
func (s *service) SimpleByDate(ctx context.Context, date string) (*Workout, error) {
	workouts, err := s.Simple(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].Date == date {
			return &workouts[i], nil
		}
	}
	return nil, nil
}

func (s *service) AddExercise(ctx context.Context, date string, ex Exercise) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("date", date)

	if err := checkDate(date); err != nil {
		return nil, err
	}
	if err := config.Validate.Struct(ex); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorkout, config.ValidationMessage(err))
	}
	ex.ID = primitive.NewObjectID()

	res, err := s.repo.AppendExercise(ctx, date, ex)
	if err != nil {
		log.WithError(err).Error("Failed to add exercise")
		return nil, err
	}

	log.WithField("exercise_id", ex.ID.Hex()).WithField("category", ex.Category).Info("Exercise added")
	return res, nil
}

func (s *service) DeleteExercise(ctx context.Context, date, exerciseID string) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("date", date).WithField("exercise_id", exerciseID)

	if err := checkDate(date); err != nil {
		return nil, err
	}
	oid, err := docstore.ParseID(exerciseID)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.PullExercise(ctx, date, oid)
	if err != nil {
		log.WithError(err).Error("Failed to delete exercise")
		return nil, err
	}
	return res, nil
}

func (s *service) DeleteSimpleWorkout(ctx context.Context, date string) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("date", date)

	if err := checkDate(date); err != nil {
		return nil, err
	}

	res, err := s.repo.PullSimpleWorkout(ctx, date)
	if err != nil {
		log.WithError(err).Error("Failed to delete workout")
		return nil, err
	}
	return res, nil
}

func checkDate(date string) error {
	if date == "" {
		return ErrDateRequired
	}
	if !util.IsCivilDate(date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidWorkout)
	}
	return nil
}
