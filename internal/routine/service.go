package routine

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

var ErrInvalidRoutine = errors.New("invalid routine")

type Service interface {
	List(ctx context.Context) ([]Routine, error)
	Recent(ctx context.Context) ([]Routine, error)
	Create(ctx context.Context, r *Routine) (*Routine, error)
	Update(ctx context.Context, id string, dto UpdateRoutineDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Routine, error) {
	routines, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list routines")
		return nil, err
	}
	return routines, nil
}

// Recent returns the latest RecentLimit routines by Date, newest first.
func (s *service) Recent(ctx context.Context) ([]Routine, error) {
	routines, err := s.repo.FindRecent(ctx, RecentLimit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch most recent routines")
		return nil, err
	}
	return routines, nil
}

// Create stores r and hands back the stored document, id included.
func (s *service) Create(ctx context.Context, r *Routine) (*Routine, error) {
	log := config.WithContext(ctx)

	if err := config.Validate.Struct(r); err != nil {
		log.WithError(err).Warn("Rejected invalid routine")
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoutine, config.ValidationMessage(err))
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}

	if err := s.repo.Insert(ctx, r); err != nil {
		log.WithError(err).Error("Failed to add routine")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"routine_id":  r.ID.Hex(),
		"date":        r.Date,
		"habits_done": r.HabitsDone(),
	}).Info("Routine added")
	return r, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateRoutineDTO) (*docstore.UpdateResult, error) {
	if err := config.Validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoutine, config.ValidationMessage(err))
	}

	res, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		config.WithContext(ctx).WithField("routine_id", id).WithError(err).Error("Failed to update routine")
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithField("routine_id", id).WithError(err).Error("Failed to delete routine")
		return nil, err
	}
	return res, nil
}
