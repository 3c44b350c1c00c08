package backlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMissedFilter(t *testing.T) {
	f := MissedFilter("2024-06-01")

	assert.Equal(t, bson.M{"$lt": "2024-06-01", "$gt": ""}, f["Due Date"])
	assert.Equal(t, bson.M{"$in": bson.A{nil, ""}}, f["Complete Date"])
	assert.Equal(t, bson.M{"$ne": true}, f["Missed"])
}

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("FindAll", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Personal.Backlog", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "Task Name", Value: "Write report"},
				{Key: "Due Date", Value: "2024-01-01"},
				{Key: "Size", Value: "M"},
			},
		))

		tasks, err := newRepositoryFromCollection(mt.Coll).FindAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, tasks, 1)
		assert.Equal(mt, "Write report", tasks[0].Name)
		assert.Equal(mt, SizeMedium, tasks[0].Size)
		assert.True(mt, tasks[0].IsOverdue("2024-06-01"))
	})

	mt.Run("MarkMissed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 3},
			bson.E{Key: "nModified", Value: 3},
		))

		res, err := newRepositoryFromCollection(mt.Coll).MarkMissed(ctx, "2024-06-01")
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, res.MatchedCount)
		assert.EqualValues(mt, 3, res.ModifiedCount)
	})

	mt.Run("UpdateStripsID", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		name := "Renamed"

		res, err := newRepositoryFromCollection(mt.Coll).Update(ctx, primitive.NewObjectID().Hex(), UpdateTaskDTO{Name: &name})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.MatchedCount)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		set := started.Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Renamed", set.Lookup("Task Name").StringValue())
		_, err = set.LookupErr("_id")
		assert.Error(mt, err)
	})

	mt.Run("DeleteMissing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := newRepositoryFromCollection(mt.Coll).Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Zero(mt, res.DeletedCount)
	})
}
