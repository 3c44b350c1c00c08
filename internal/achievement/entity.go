package achievement

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "Achievements"
	DefaultUserID  = "default"
)

type Pool string

const (
	PoolProjects      Pool = "projects"
	PoolRoutines      Pool = "routines"
	PoolWorkouts      Pool = "workouts"
	PoolWeeklyWorkout Pool = "weeklyWorkout"
)

// Field is the counter a pool increments. Weekly workouts count toward
// workoutsLevel.
func (p Pool) Field() (string, bool) {
	switch p {
	case PoolProjects, PoolRoutines, PoolWorkouts:
		return string(p) + "Level", true
	case PoolWeeklyWorkout:
		return "workoutsLevel", true
	default:
		return "", false
	}
}

// Levels is the single achievements document of the default user.
type Levels struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID                string             `bson:"userId" json:"userId"`
	ProjectsLevel         int                `bson:"projectsLevel" json:"projectsLevel"`
	RoutinesLevel         int                `bson:"routinesLevel" json:"routinesLevel"`
	WorkoutsLevel         int                `bson:"workoutsLevel" json:"workoutsLevel"`
	LastWeeklyWorkoutWeek *string            `bson:"lastWeeklyWorkoutWeek" json:"lastWeeklyWorkoutWeek"`
}

func (l Levels) Level(p Pool) int {
	switch p {
	case PoolProjects:
		return l.ProjectsLevel
	case PoolRoutines:
		return l.RoutinesLevel
	default:
		return l.WorkoutsLevel
	}
}

// defaults is what a freshly created document holds, minus the fields an
// update is about to touch.
func defaults(except ...string) bson.M {
	m := bson.M{
		"projectsLevel":         0,
		"routinesLevel":         0,
		"workoutsLevel":         0,
		"lastWeeklyWorkoutWeek": nil,
	}
	for _, f := range except {
		delete(m, f)
	}
	return m
}
