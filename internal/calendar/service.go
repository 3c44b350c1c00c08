package calendar

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

var ErrInvalidEvent = errors.New("invalid event")

type Service interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, e *Event) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, dto UpdateEventDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list calendar events")
		return nil, err
	}
	return events, nil
}

func (s *service) Create(ctx context.Context, e *Event) (*docstore.InsertResult, error) {
	log := config.WithContext(ctx)

	if err := validateEvent(e); err != nil {
		log.WithError(err).Warn("Rejected invalid event")
		return nil, err
	}
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}

	res, err := s.repo.Insert(ctx, e)
	if err != nil {
		log.WithError(err).Error("Failed to create event")
		return nil, err
	}

	log.WithField("event_id", e.ID.Hex()).Info("Event created")
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateEventDTO) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("event_id", id)

	if err := config.Validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEvent, config.ValidationMessage(err))
	}
	if dto.Date != nil && !util.IsCivilDate(util.NormalizeDate(*dto.Date)) {
		return nil, fmt.Errorf("%w: date must start with YYYY-MM-DD", ErrInvalidEvent)
	}

	res, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		log.WithError(err).Error("Failed to update event")
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithField("event_id", id).WithError(err).Error("Failed to delete event")
		return nil, err
	}
	return res, nil
}

func validateEvent(e *Event) error {
	if err := config.Validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEvent, config.ValidationMessage(err))
	}
	if !util.IsCivilDate(e.Day()) {
		return fmt.Errorf("%w: date must start with YYYY-MM-DD", ErrInvalidEvent)
	}
	return nil
}
