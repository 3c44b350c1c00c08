package routine

import "github.com/saulo-duarte/personal-lambda/internal/docstore"

type UpdateRoutineDTO struct {
	Date              *string          `bson:"Date,omitempty" json:"Date" validate:"omitempty,civildate"`
	SleepScore        *docstore.Number `bson:"Sleep Score,omitempty" json:"Sleep Score"`
	FabMorning        *bool            `bson:"Fab Morning,omitempty" json:"Fab Morning"`
	WorkScore         *docstore.Number `bson:"Work Score,omitempty" json:"Work Score"`
	Workout           *bool            `bson:"Workout,omitempty" json:"Workout"`
	Piano             *bool            `bson:"Piano,omitempty" json:"Piano"`
	ProfDev           *bool            `bson:"Prof Dev,omitempty" json:"Prof Dev"`
	ProjectWork       *bool            `bson:"Project Work,omitempty" json:"Project Work"`
	Spanish           *bool            `bson:"Spanish,omitempty" json:"Spanish"`
	FabEvening        *bool            `bson:"Fab Evening,omitempty" json:"Fab Evening"`
	ProteinPct        *docstore.Number `bson:"Protein %,omitempty" json:"Protein %"`
	CaloriesPct       *docstore.Number `bson:"Calories %,omitempty" json:"Calories %"`
	SocialActivities  *string          `bson:"Social Activities,omitempty" json:"Social Activities"`
	MoodScore         *docstore.Number `bson:"Mood Score,omitempty" json:"Mood Score"`
	MoodSummary       *string          `bson:"Mood Summary,omitempty" json:"Mood Summary"`
	PerformanceScore  *docstore.Number `bson:"Performance Score,omitempty" json:"Performance Score"`
	PerformanceRating *string          `bson:"Performance Rating,omitempty" json:"Performance Rating"`
	Journal           *string          `bson:"Journal,omitempty" json:"Journal"`
}

type UpdateRoutineRequest struct {
	ID          string           `json:"id"`
	UpdatedItem UpdateRoutineDTO `json:"updatedItem"`
}

type DeleteRoutineRequest struct {
	ID string `json:"id"`
}
