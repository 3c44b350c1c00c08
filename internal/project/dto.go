package project

import "github.com/saulo-duarte/personal-lambda/internal/docstore"

type UpdateProjectDTO struct {
	Name       *string               `bson:"Project Name,omitempty" json:"Project Name" validate:"omitempty,min=1"`
	Priority   *docstore.Number      `bson:"Project Priority,omitempty" json:"Project Priority"`
	Type       *string               `bson:"Type,omitempty" json:"Type"`
	Notes      *string               `bson:"Notes,omitempty" json:"Notes"`
	Milestones *map[string]Milestone `bson:"Milestones,omitempty" json:"Milestones"`
}

type UpdateProjectRequest struct {
	ID          string           `json:"id"`
	UpdatedItem UpdateProjectDTO `json:"updatedItem"`
}

type DeleteProjectRequest struct {
	ID string `json:"id"`
}

// ProjectResponse adds the derived status to a stored project.
type ProjectResponse struct {
	Project
	Status ProjectStatus `json:"status"`
}
