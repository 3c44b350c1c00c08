package achievement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func levelsDoc(workouts int32, week interface{}) bson.D {
	return bson.D{
		{Key: "userId", Value: DefaultUserID},
		{Key: "projectsLevel", Value: int32(1)},
		{Key: "routinesLevel", Value: int32(2)},
		{Key: "workoutsLevel", Value: workouts},
		{Key: "lastWeeklyWorkoutWeek", Value: week},
	}
}

func findAndModify(doc interface{}) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc})
}

func fixedService(repo Repository, now time.Time) Service {
	return &service{repo: repo, now: func() time.Time { return now }}
}

func TestPoolField(t *testing.T) {
	f, ok := PoolProjects.Field()
	assert.True(t, ok)
	assert.Equal(t, "projectsLevel", f)

	f, ok = PoolWeeklyWorkout.Field()
	assert.True(t, ok)
	assert.Equal(t, "workoutsLevel", f)

	_, ok = Pool("sleep").Field()
	assert.False(t, ok)
}

func TestDefaultsExcept(t *testing.T) {
	d := defaults("routinesLevel")
	assert.NotContains(t, d, "routinesLevel")
	assert.Contains(t, d, "projectsLevel")
	assert.Nil(t, d["lastWeeklyWorkoutWeek"])
}

func TestWeeklyWorkoutIsIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("SameWeekTwiceThenNextWeek", func(mt *mtest.T) {
		svc := NewService(newRepositoryFromCollection(mt.Coll))

		mt.AddMockResponses(
			findAndModify(levelsDoc(0, nil)),
			findAndModify(levelsDoc(1, "2024-W10")),
		)
		first, err := svc.CompleteWeeklyWorkout(ctx, "2024-W10")
		require.NoError(mt, err)
		assert.Equal(mt, &WeeklyResult{AlreadyCompleted: false, Level: 1}, first)

		mt.AddMockResponses(
			findAndModify(levelsDoc(1, "2024-W10")),
			findAndModify(nil),
			mtest.CreateCursorResponse(0, "Personal.Achievements", mtest.FirstBatch, levelsDoc(1, "2024-W10")),
		)
		second, err := svc.CompleteWeeklyWorkout(ctx, "2024-W10")
		require.NoError(mt, err)
		assert.Equal(mt, &WeeklyResult{AlreadyCompleted: true, Level: 1}, second)

		mt.AddMockResponses(
			findAndModify(levelsDoc(1, "2024-W10")),
			findAndModify(levelsDoc(2, "2024-W11")),
		)
		third, err := svc.CompleteWeeklyWorkout(ctx, "2024-W11")
		require.NoError(mt, err)
		assert.Equal(mt, &WeeklyResult{AlreadyCompleted: false, Level: 2}, third)
	})

	mt.Run("ConditionalFilter", func(mt *mtest.T) {
		mt.AddMockResponses(
			findAndModify(levelsDoc(0, nil)),
			findAndModify(levelsDoc(1, "2024-W11")),
		)
		_, credited, err := newRepositoryFromCollection(mt.Coll).MarkWeek(ctx, "2024-W11")
		require.NoError(mt, err)
		assert.True(mt, credited)

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.True(mt, events[0].Command.Lookup("upsert").Boolean())
		cond := events[1].Command
		assert.Equal(mt, "2024-W11", cond.Lookup("query", "lastWeeklyWorkoutWeek", "$ne").StringValue())
		_, err = cond.LookupErr("upsert")
		assert.Error(mt, err)
	})

	mt.Run("DefaultsToCurrentWeek", func(mt *mtest.T) {
		now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
		svc := fixedService(newRepositoryFromCollection(mt.Coll), now)

		mt.AddMockResponses(
			findAndModify(levelsDoc(0, nil)),
			findAndModify(levelsDoc(1, "2024-W10")),
		)
		_, err := svc.CompleteWeeklyWorkout(ctx, "")
		require.NoError(mt, err)

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "2024-W10", events[1].Command.Lookup("update", "$set", "lastWeeklyWorkoutWeek").StringValue())
	})
}

func TestIncrement(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("ReturnsPostValue", func(mt *mtest.T) {
		mt.AddMockResponses(findAndModify(levelsDoc(7, nil)))

		level, err := NewService(newRepositoryFromCollection(mt.Coll)).Increment(ctx, PoolRoutines)
		require.NoError(mt, err)
		assert.Equal(mt, 2, level)

		cmd := mt.GetStartedEvent().Command
		assert.EqualValues(mt, 1, cmd.Lookup("update", "$inc", "routinesLevel").AsInt64())
		_, err = cmd.LookupErr("update", "$setOnInsert", "routinesLevel")
		assert.Error(mt, err)
	})

	mt.Run("InvalidPool", func(mt *mtest.T) {
		svc := NewService(newRepositoryFromCollection(mt.Coll))

		_, err := svc.Increment(ctx, "sleep")
		assert.ErrorIs(mt, err, ErrInvalidPool)
		_, err = svc.Increment(ctx, PoolWeeklyWorkout)
		assert.ErrorIs(mt, err, ErrInvalidPool)
	})
}

func TestHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Get", func(mt *mtest.T) {
		mt.AddMockResponses(findAndModify(levelsDoc(5, "2024-W09")))
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"workoutsLevel":5`)
		assert.Contains(mt, rec.Body.String(), `"lastWeeklyWorkoutWeek":"2024-W09"`)
	})

	mt.Run("InvalidPool", func(mt *mtest.T) {
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pool":"sleep"}`)))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assert.JSONEq(mt, `{"error":"Invalid pool"}`, rec.Body.String())
	})

	mt.Run("Projects", func(mt *mtest.T) {
		mt.AddMockResponses(findAndModify(levelsDoc(0, nil)))
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pool":"projects"}`)))

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt, `{"level":1}`, rec.Body.String())
	})
}
