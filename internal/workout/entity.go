package workout

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

const (
	CollectionName = "Workouts"
	TypeSimple     = "simple"
	CategoryCardio = "Cardio"
)

// Container is the document that owns every workout entry. Readers use the
// first container in natural order.
type Container struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Workouts []Workout          `bson:"Workouts" json:"Workouts"`
}

// Workout is one dated entry. Type is "simple" for quick-log workouts and
// anything else for structured ones.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type      string             `bson:"Type" json:"Type"`
	Date      string             `bson:"Date" json:"Date"`
	Exercises []Exercise         `bson:"Exercises" json:"Exercises"`
}

func (w Workout) IsSimple() bool {
	return w.Type == TypeSimple
}

func (w Workout) On(date string) bool {
	return util.NormalizeDate(w.Date) == date
}

// Exercise fields beyond Category depend on it: strength work uses
// sets/reps/weight, cardio uses miles/time.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category     string             `bson:"Category" json:"Category" validate:"required"`
	ExerciseName string             `bson:"ExerciseName,omitempty" json:"ExerciseName,omitempty"`
	ExerciseType string             `bson:"ExerciseType,omitempty" json:"ExerciseType,omitempty"`
	Intensity    string             `bson:"Intensity,omitempty" json:"Intensity,omitempty"`
	Sets         docstore.Number    `bson:"Sets,omitempty" json:"Sets"`
	Reps         docstore.Number    `bson:"Reps,omitempty" json:"Reps"`
	Weight       docstore.Number    `bson:"Weight,omitempty" json:"Weight"`
	Miles        docstore.Number    `bson:"Miles,omitempty" json:"Miles"`
	Time         docstore.Number    `bson:"Time,omitempty" json:"Time"`
}

// CardioMiles is the distance an exercise contributes to the cardio KPI.
func (e Exercise) CardioMiles() float64 {
	if e.Category != CategoryCardio || e.Miles.Float() <= 0 {
		return 0
	}
	return e.Miles.Float()
}

// Simple filters the simple entries of ws, keeping order.
func Simple(ws []Workout) []Workout {
	out := make([]Workout, 0, len(ws))
	for _, w := range ws {
		if w.IsSimple() {
			out = append(out, w)
		}
	}
	return out
}
