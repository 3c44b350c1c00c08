package workout

type UpdateContainerDTO struct {
	Workouts *[]Workout `bson:"Workouts,omitempty" json:"Workouts"`
}

type UpdateContainerRequest struct {
	ID          string             `json:"id"`
	UpdatedItem UpdateContainerDTO `json:"updatedItem"`
}

type DeleteContainerRequest struct {
	ID string `json:"id"`
}

type SetExercisesRequest struct {
	Date      string      `json:"date"`
	Exercises *[]Exercise `json:"Exercises"`
}

type AddExerciseRequest struct {
	Date     string    `json:"date"`
	Exercise *Exercise `json:"exercise"`
}

type DeleteExerciseRequest struct {
	Date       string `json:"date"`
	ExerciseID string `json:"exerciseId"`
}

type DeleteDayRequest struct {
	Date string `json:"date"`
}

type WriteResponse struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
