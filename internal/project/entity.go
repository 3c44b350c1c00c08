package project

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

const CollectionName = "Projects"

// Project milestones are keyed by milestone name.
type Project struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name       string               `bson:"Project Name" json:"Project Name" validate:"required"`
	Priority   docstore.Number      `bson:"Project Priority,omitempty" json:"Project Priority"`
	Type       string               `bson:"Type,omitempty" json:"Type,omitempty"`
	Notes      string               `bson:"Notes,omitempty" json:"Notes,omitempty"`
	Milestones map[string]Milestone `bson:"Milestones" json:"Milestones" validate:"dive"`
}

type Milestone struct {
	Priority      docstore.Number `bson:"Milestone Priority,omitempty" json:"Milestone Priority"`
	StartDate     string          `bson:"Start Date,omitempty" json:"Start Date,omitempty" validate:"civildate"`
	DueDate       string          `bson:"Due Date,omitempty" json:"Due Date,omitempty" validate:"civildate"`
	CompleteDate  string          `bson:"Complete Date,omitempty" json:"Complete Date,omitempty" validate:"civildate"`
	EstimatedSize string          `bson:"Estimated Size,omitempty" json:"Estimated Size,omitempty"`
	ActualHours   docstore.Number `bson:"Actual Hours,omitempty" json:"Actual Hours"`
	Target        string          `bson:"Target,omitempty" json:"Target,omitempty"`
	Actual        string          `bson:"Actual,omitempty" json:"Actual,omitempty"`
	Notes         string          `bson:"Notes,omitempty" json:"Notes,omitempty"`
}

func (m Milestone) IsComplete() bool {
	return m.CompleteDate != ""
}

// IsP0 needs an explicit priority of zero; a blank priority is not P0.
func (m Milestone) IsP0() bool {
	return m.Priority.Valid && m.Priority.Value == 0
}

// CompletedIn reports whether m was completed on a day of w.
func (m Milestone) CompletedIn(w util.Week) bool {
	return m.IsComplete() && w.Contains(m.CompleteDate)
}

func (p Project) Status() ProjectStatus {
	return statusOf(p.Milestones)
}

// MilestoneRow is one milestone flattened with its project's fields.
type MilestoneRow struct {
	ProjectID       primitive.ObjectID `json:"projectId"`
	ProjectName     string             `json:"ProjectName"`
	ProjectPriority docstore.Number    `json:"ProjectPriority"`
	ProjectType     string             `json:"ProjectType,omitempty"`
	MilestoneName   string             `json:"MilestoneName"`
	Milestone
}

// Rows flattens the milestones of p, ordered by milestone name.
func (p Project) Rows() []MilestoneRow {
	names := make([]string, 0, len(p.Milestones))
	for name := range p.Milestones {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]MilestoneRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, MilestoneRow{
			ProjectID:       p.ID,
			ProjectName:     p.Name,
			ProjectPriority: p.Priority,
			ProjectType:     p.Type,
			MilestoneName:   name,
			Milestone:       p.Milestones[name],
		})
	}
	return rows
}
