package backlog

// UpdateTaskDTO is a partial update; nil fields are left untouched.
type UpdateTaskDTO struct {
	Name         *string `bson:"Task Name,omitempty" json:"Task Name" validate:"omitempty,min=1"`
	StartDate    *string `bson:"Start Date,omitempty" json:"Start Date" validate:"omitempty,civildate"`
	DueDate      *string `bson:"Due Date,omitempty" json:"Due Date" validate:"omitempty,civildate"`
	CompleteDate *string `bson:"Complete Date,omitempty" json:"Complete Date" validate:"omitempty,civildate"`
	Priority     *string `bson:"Priority,omitempty" json:"Priority"`
	Type         *string `bson:"Type,omitempty" json:"Type"`
	Project      *string `bson:"Project,omitempty" json:"Project"`
	Notes        *string `bson:"Notes,omitempty" json:"Notes"`
	Links        *string `bson:"Links,omitempty" json:"Links"`
	Size         *Size   `bson:"Size,omitempty" json:"Size" validate:"omitempty,oneof=S M L"`
	Missed       *bool   `bson:"Missed,omitempty" json:"Missed"`
}

type UpdateTaskRequest struct {
	ID          string        `json:"id"`
	UpdatedItem UpdateTaskDTO `json:"updatedItem"`
}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type SizeMigration struct {
	Session  string `json:"session"`
	Size     Size   `json:"size"`
	Modified int64  `json:"modified"`
}
