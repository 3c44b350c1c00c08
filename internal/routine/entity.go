package routine

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

const (
	CollectionName = "Routines"
	RecentLimit    = 2
)

// Routine is one day of habits, scores and reflections. The form posts
// numeric inputs as strings, hence docstore.Number for every score.
type Routine struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date              string             `bson:"Date" json:"Date" validate:"required,civildate"`
	SleepScore        docstore.Number    `bson:"Sleep Score" json:"Sleep Score"`
	FabMorning        bool               `bson:"Fab Morning" json:"Fab Morning"`
	WorkScore         docstore.Number    `bson:"Work Score" json:"Work Score"`
	Workout           bool               `bson:"Workout" json:"Workout"`
	Piano             bool               `bson:"Piano" json:"Piano"`
	ProfDev           bool               `bson:"Prof Dev" json:"Prof Dev"`
	ProjectWork       bool               `bson:"Project Work" json:"Project Work"`
	Spanish           bool               `bson:"Spanish" json:"Spanish"`
	FabEvening        bool               `bson:"Fab Evening" json:"Fab Evening"`
	ProteinPct        docstore.Number    `bson:"Protein %" json:"Protein %"`
	CaloriesPct       docstore.Number    `bson:"Calories %" json:"Calories %"`
	SocialActivities  string             `bson:"Social Activities" json:"Social Activities"`
	MoodScore         docstore.Number    `bson:"Mood Score" json:"Mood Score"`
	MoodSummary       string             `bson:"Mood Summary" json:"Mood Summary"`
	PerformanceScore  docstore.Number    `bson:"Performance Score" json:"Performance Score"`
	PerformanceRating string             `bson:"Performance Rating" json:"Performance Rating"`
	Journal           string             `bson:"Journal" json:"Journal"`
}

// HabitsDone counts the boolean habits checked off for the day.
func (r Routine) HabitsDone() int {
	n := 0
	for _, done := range []bool{r.FabMorning, r.Workout, r.Piano, r.ProfDev, r.ProjectWork, r.Spanish, r.FabEvening} {
		if done {
			n++
		}
	}
	return n
}
