package calendar

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

const CollectionName = "Calendar"

// Event dates arrive either as YYYY-MM-DD or as an ISO timestamp at UTC
// midnight; only the leading civil date is meaningful.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty" validate:"clocktime"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AlertsSent  []string           `bson:"alertsSent,omitempty" json:"alertsSent,omitempty"`
}

func (e Event) Day() string {
	return util.NormalizeDate(e.Date)
}

func (e Event) InWeek(w util.Week) bool {
	return w.Contains(e.Date)
}
