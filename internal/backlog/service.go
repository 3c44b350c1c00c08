package backlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

var ErrInvalidTask = errors.New("invalid task")

// sessionSizes maps the retired Session field onto Size.
var sessionSizes = []struct {
	Session string
	Size    Size
}{
	{"Big", SizeLarge},
	{"Next", SizeMedium},
	{"Small", SizeSmall},
}

type Service interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, t *Task) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, dto UpdateTaskDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
	MarkMissed(ctx context.Context, today string) (*docstore.UpdateResult, error)
	Overdue(ctx context.Context, today string) ([]Task, error)
	MigrateSessionToSize(ctx context.Context) ([]SizeMigration, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Task, error) {
	log := config.WithContext(ctx)

	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list backlog")
		return nil, err
	}
	return tasks, nil
}

func (s *service) Create(ctx context.Context, t *Task) (*docstore.InsertResult, error) {
	log := config.WithContext(ctx)

	if err := config.Validate.Struct(t); err != nil {
		log.WithError(err).Warn("Rejected invalid task")
		return nil, fmt.Errorf("%w: %s", ErrInvalidTask, config.ValidationMessage(err))
	}

	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	res, err := s.repo.Insert(ctx, t)
	if err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithField("task_id", t.ID.Hex()).Info("Task created successfully")
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateTaskDTO) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("task_id", id)

	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Rejected invalid task update")
		return nil, fmt.Errorf("%w: %s", ErrInvalidTask, config.ValidationMessage(err))
	}

	res, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		logFailure(log, err, "Failed to update task")
		return nil, err
	}

	log.WithField("matched", res.MatchedCount).Info("Task updated")
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	log := config.WithContext(ctx).WithField("task_id", id)

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		logFailure(log, err, "Failed to delete task")
		return nil, err
	}

	log.WithField("deleted", res.DeletedCount).Info("Task deleted")
	return res, nil
}

func (s *service) MarkMissed(ctx context.Context, today string) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("today", today)

	res, err := s.repo.MarkMissed(ctx, today)
	if err != nil {
		log.WithError(err).Error("Failed to mark missed tasks")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"matched":  res.MatchedCount,
		"modified": res.ModifiedCount,
	}).Info("Missed tasks marked")
	return res, nil
}

// Overdue lists the tasks MarkMissed would flag, without writing.
func (s *service) Overdue(ctx context.Context, today string) ([]Task, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	overdue := make([]Task, 0)
	for _, t := range tasks {
		if t.IsOverdue(today) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}

func (s *service) MigrateSessionToSize(ctx context.Context) ([]SizeMigration, error) {
	log := config.WithContext(ctx)

	migrations := make([]SizeMigration, 0, len(sessionSizes)+1)
	for _, m := range sessionSizes {
		res, err := s.repo.RenameSession(ctx, m.Session, m.Size)
		if err != nil {
			log.WithError(err).WithField("session", m.Session).Error("Failed to migrate session")
			return migrations, err
		}
		migrations = append(migrations, SizeMigration{Session: m.Session, Size: m.Size, Modified: res.ModifiedCount})
	}

	res, err := s.repo.DefaultSize(ctx, SizeMedium)
	if err != nil {
		log.WithError(err).Error("Failed to default task size")
		return migrations, err
	}
	migrations = append(migrations, SizeMigration{Size: SizeMedium, Modified: res.ModifiedCount})

	log.Info("Session to size migration complete")
	return migrations, nil
}

func logFailure(log logrus.FieldLogger, err error, msg string) {
	if errors.Is(err, docstore.ErrInvalidID) || errors.Is(err, docstore.ErrEmptyPatch) {
		log.WithError(err).Warn(msg)
		return
	}
	log.WithError(err).Error(msg)
}
