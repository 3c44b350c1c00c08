package workout

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Container, error)
	First(ctx context.Context) (*Container, error)
	Insert(ctx context.Context, c *Container) (*docstore.InsertResult, error)
	Update(ctx context.Context, id string, patch UpdateContainerDTO) (*docstore.UpdateResult, error)
	Delete(ctx context.Context, id string) (*docstore.DeleteResult, error)
	SetExercises(ctx context.Context, date string, exercises []Exercise) (*docstore.UpdateResult, error)
	AppendExercise(ctx context.Context, date string, ex Exercise) (*docstore.UpdateResult, error)
	PullExercise(ctx context.Context, date string, exerciseID primitive.ObjectID) (*docstore.UpdateResult, error)
	PullSimpleWorkout(ctx context.Context, date string) (*docstore.UpdateResult, error)
}

type repository struct {
	containers *docstore.Collection[Container]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{containers: docstore.NewCollection[Container](db, CollectionName)}
}

func newRepositoryFromCollection(coll *mongo.Collection) Repository {
	return &repository{containers: docstore.Wrap[Container](coll)}
}

// simpleOn matches the container holding the simple workout of date. Both
// conditions must hold for the same array element.
func simpleOn(date string) bson.M {
	return bson.M{"Workouts": bson.M{"$elemMatch": bson.M{"Date": date, "Type": TypeSimple}}}
}

func (r *repository) FindAll(ctx context.Context) ([]Container, error) {
	return r.containers.FindAll(ctx)
}

// First returns the container readers use, or an empty one when the
// collection has none yet.
func (r *repository) First(ctx context.Context) (*Container, error) {
	c, err := r.containers.FindOne(ctx, bson.M{})
	if errors.Is(err, docstore.ErrNotFound) {
		return &Container{Workouts: []Workout{}}, nil
	}
	return c, err
}

func (r *repository) Insert(ctx context.Context, c *Container) (*docstore.InsertResult, error) {
	return r.containers.Insert(ctx, c)
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateContainerDTO) (*docstore.UpdateResult, error) {
	return r.containers.UpdateByID(ctx, id, patch)
}

func (r *repository) Delete(ctx context.Context, id string) (*docstore.DeleteResult, error) {
	return r.containers.DeleteByID(ctx, id)
}

// SetExercises replaces the exercises of the structured workout of date.
func (r *repository) SetExercises(ctx context.Context, date string, exercises []Exercise) (*docstore.UpdateResult, error) {
	return r.containers.UpdateOne(ctx,
		bson.M{"Workouts": bson.M{"$elemMatch": bson.M{"Date": date, "Type": bson.M{"$ne": TypeSimple}}}},
		bson.M{"$set": bson.M{"Workouts.$.Exercises": exercises}},
	)
}

// AppendExercise pushes ex into the simple workout of date, creating that
// workout when the container has none. The create step only matches a
// container still lacking the date, so two racing first adds end up in one
// workout. The container itself is created on the very first add.
func (r *repository) AppendExercise(ctx context.Context, date string, ex Exercise) (*docstore.UpdateResult, error) {
	push := bson.M{"$push": bson.M{"Workouts.$.Exercises": ex}}

	res, err := r.containers.UpdateOne(ctx, simpleOn(date), push)
	if err != nil || res.MatchedCount > 0 {
		return res, err
	}

	w := Workout{ID: primitive.NewObjectID(), Type: TypeSimple, Date: date, Exercises: []Exercise{ex}}
	res, err = r.containers.UpdateOne(ctx,
		bson.M{"Workouts": bson.M{"$not": bson.M{"$elemMatch": bson.M{"Date": date, "Type": TypeSimple}}}},
		bson.M{"$push": bson.M{"Workouts": w}},
	)
	if err != nil || res.MatchedCount > 0 {
		return res, err
	}

	// Either another request created the workout meanwhile or there is no
	// container yet.
	res, err = r.containers.UpdateOne(ctx, simpleOn(date), push)
	if err != nil || res.MatchedCount > 0 {
		return res, err
	}
	return r.containers.UpdateOne(ctx, bson.M{}, bson.M{"$push": bson.M{"Workouts": w}}, options.Update().SetUpsert(true))
}

func (r *repository) PullExercise(ctx context.Context, date string, exerciseID primitive.ObjectID) (*docstore.UpdateResult, error) {
	return r.containers.UpdateOne(ctx,
		simpleOn(date),
		bson.M{"$pull": bson.M{"Workouts.$.Exercises": bson.M{"_id": exerciseID}}},
	)
}

func (r *repository) PullSimpleWorkout(ctx context.Context, date string) (*docstore.UpdateResult, error) {
	return r.containers.UpdateOne(ctx,
		bson.M{},
		bson.M{"$pull": bson.M{"Workouts": bson.M{"Date": date, "Type": TypeSimple}}},
	)
}
