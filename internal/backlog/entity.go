package backlog

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "Backlog"

type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusMissed    Status = "MISSED"
	StatusCompleted Status = "COMPLETED"
)

// Task field names are the ones the backlog collection has always stored.
type Task struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"Task Name" json:"Task Name" validate:"required"`
	StartDate    string             `bson:"Start Date,omitempty" json:"Start Date,omitempty" validate:"civildate"`
	DueDate      string             `bson:"Due Date,omitempty" json:"Due Date,omitempty" validate:"civildate"`
	CompleteDate string             `bson:"Complete Date,omitempty" json:"Complete Date,omitempty" validate:"civildate"`
	Priority     string             `bson:"Priority,omitempty" json:"Priority,omitempty"`
	Type         string             `bson:"Type,omitempty" json:"Type,omitempty"`
	Project      string             `bson:"Project,omitempty" json:"Project,omitempty"`
	Notes        string             `bson:"Notes,omitempty" json:"Notes,omitempty"`
	Links        string             `bson:"Links,omitempty" json:"Links,omitempty"`
	Size         Size               `bson:"Size,omitempty" json:"Size,omitempty" validate:"omitempty,oneof=S M L"`
	Session      string             `bson:"Session,omitempty" json:"Session,omitempty"`
	Missed       bool               `bson:"Missed,omitempty" json:"Missed"`
}

// Status derives the lifecycle state. A completion date wins over a stale
// Missed flag, which is never cleared once set.
func (t Task) Status() Status {
	switch {
	case t.CompleteDate != "":
		return StatusCompleted
	case t.Missed:
		return StatusMissed
	default:
		return StatusOpen
	}
}

// IsOverdue reports whether the missed-task correction would flag t on today.
func (t Task) IsOverdue(today string) bool {
	return t.DueDate != "" && t.DueDate < today && t.CompleteDate == "" && !t.Missed
}

// IsOpen counts toward the open task KPI.
func (t Task) IsOpen() bool {
	return t.CompleteDate == "" && !t.Missed
}
