package calendar

type UpdateEventDTO struct {
	Title       *string `bson:"title,omitempty" json:"title" validate:"omitempty,min=1"`
	Date        *string `bson:"date,omitempty" json:"date"`
	Time        *string `bson:"time,omitempty" json:"time" validate:"omitempty,clocktime"`
	Location    *string `bson:"location,omitempty" json:"location"`
	Description *string `bson:"description,omitempty" json:"description"`
}

type UpdateEventRequest struct {
	ID          string         `json:"id"`
	UpdatedItem UpdateEventDTO `json:"updatedItem"`
}

type DeleteEventRequest struct {
	ID string `json:"id"`
}
