package project

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

var ErrInvalidProject = errors.New("invalid project")

type Service interface {
	List(ctx context.Context) ([]ProjectResponse, error)
	Milestones(ctx context.Context) ([]MilestoneRow, error)
	Create(ctx context.Context, p *Project) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, dto UpdateProjectDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list projects")
		return nil, err
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponse{Project: p, Status: p.Status()})
	}
	return out, nil
}

// Milestones lists every milestone of every project as flat rows.
func (s *service) Milestones(ctx context.Context) ([]MilestoneRow, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list milestones")
		return nil, err
	}

	rows := make([]MilestoneRow, 0)
	for _, p := range projects {
		rows = append(rows, p.Rows()...)
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, p *Project) (*docstore.InsertResult, error) {
	log := config.WithContext(ctx)

	if err := config.Validate.Struct(p); err != nil {
		log.WithError(err).Warn("Rejected invalid project")
		return nil, fmt.Errorf("%w: %s", ErrInvalidProject, config.ValidationMessage(err))
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Milestones == nil {
		p.Milestones = map[string]Milestone{}
	}

	res, err := s.repo.Insert(ctx, p)
	if err != nil {
		log.WithError(err).Error("Failed to create project")
		return nil, err
	}

	log.WithField("project_id", p.ID.Hex()).Info("Project created")
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateProjectDTO) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("project_id", id)

	if err := config.Validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProject, config.ValidationMessage(err))
	}
	if dto.Milestones != nil {
		for name, m := range *dto.Milestones {
			if err := config.Validate.Struct(m); err != nil {
				return nil, fmt.Errorf("%w: milestone %q: %s", ErrInvalidProject, name, config.ValidationMessage(err))
			}
		}
	}

	res, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		log.WithError(err).Error("Failed to update project")
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithField("project_id", id).WithError(err).Error("Failed to delete project")
		return nil, err
	}
	return res, nil
}
