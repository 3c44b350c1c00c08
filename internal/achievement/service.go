package achievement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

var ErrInvalidPool = errors.New("invalid pool")

type Service interface {
	Get(ctx context.Context) (*Levels, error)
	Increment(ctx context.Context, pool Pool) (int, error)
	CompleteWeeklyWorkout(ctx context.Context, week string) (*WeeklyResult, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Get(ctx context.Context) (*Levels, error) {
	levels, err := s.repo.Get(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch achievement levels")
		return nil, err
	}
	return levels, nil
}

// Increment bumps one of the plain pools and returns its new level.
func (s *service) Increment(ctx context.Context, pool Pool) (int, error) {
	log := config.WithContext(ctx).WithField("pool", pool)

	field, ok := pool.Field()
	if !ok || pool == PoolWeeklyWorkout {
		log.Warn("Rejected unknown achievement pool")
		return 0, fmt.Errorf("%w: %q", ErrInvalidPool, pool)
	}

	levels, err := s.repo.Increment(ctx, field)
	if err != nil {
		log.WithError(err).Error("Failed to increment achievement level")
		return 0, err
	}

	level := levels.Level(pool)
	log.WithField("level", level).Info("Achievement level incremented")
	return level, nil
}

// CompleteWeeklyWorkout credits the workouts pool once per ISO week. An
// empty week means the current one.
func (s *service) CompleteWeeklyWorkout(ctx context.Context, week string) (*WeeklyResult, error) {
	if week == "" {
		week = util.WeekIdentifier(s.now())
	}
	log := config.WithContext(ctx).WithField("week", week)

	levels, credited, err := s.repo.MarkWeek(ctx, week)
	if err != nil {
		log.WithError(err).Error("Failed to mark weekly workout")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"credited": credited,
		"level":    levels.WorkoutsLevel,
	}).Info("Weekly workout checked")
	return &WeeklyResult{AlreadyCompleted: !credited, Level: levels.WorkoutsLevel}, nil
}
