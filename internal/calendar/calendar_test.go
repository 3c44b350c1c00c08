package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

func TestEventInWeek(t *testing.T) {
	week := util.Week{Start: "2024-03-04", End: "2024-03-10"}

	assert.True(t, Event{Date: "2024-03-05T00:00:00.000Z"}.InWeek(week))
	assert.True(t, Event{Date: "2024-03-10"}.InWeek(week))
	assert.False(t, Event{Date: "2024-03-11T00:00:00.000Z"}.InWeek(week))
	assert.False(t, Event{}.InWeek(week))
}

func TestServiceCreateValidation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Valid", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		svc := NewService(newRepositoryFromCollection(mt.Coll))

		e := &Event{Title: "Dentist", Date: "2024-03-05T00:00:00.000Z", Time: "09:30"}
		res, err := svc.Create(ctx, e)
		require.NoError(mt, err)
		assert.False(mt, e.ID.IsZero())
		assert.Equal(mt, e.ID, res.InsertedID)
	})

	mt.Run("Invalid", func(mt *mtest.T) {
		svc := NewService(newRepositoryFromCollection(mt.Coll))

		_, err := svc.Create(ctx, &Event{Date: "2024-03-05"})
		assert.ErrorIs(mt, err, ErrInvalidEvent)

		_, err = svc.Create(ctx, &Event{Title: "x", Date: "tomorrow"})
		assert.ErrorIs(mt, err, ErrInvalidEvent)

		_, err = svc.Create(ctx, &Event{Title: "x", Date: "2024-03-05", Time: "9am"})
		assert.ErrorIs(mt, err, ErrInvalidEvent)
	})
}

func TestRepositoryFindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("DecodesEvents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Personal.Calendar", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "title", Value: "Standup"},
				{Key: "date", Value: "2024-03-05T00:00:00.000Z"},
				{Key: "alertsSent", Value: bson.A{"hour"}},
			},
		))

		events, err := newRepositoryFromCollection(mt.Coll).FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, events, 1)
		assert.Equal(mt, "2024-03-05", events[0].Day())
		assert.Equal(mt, []string{"hour"}, events[0].AlertsSent)
	})
}

func TestHandlerUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("InvalidID", func(mt *mtest.T) {
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"id":"abc","updatedItem":{"title":"x"}}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assert.JSONEq(mt, `{"error":"Invalid ID format"}`, rec.Body.String())
	})

	mt.Run("Updated", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))
		body := `{"id":"` + primitive.NewObjectID().Hex() + `","updatedItem":{"location":"Office"}}`
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"modifiedCount":1`)
	})
}
