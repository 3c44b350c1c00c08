package routine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

func TestHabitsDone(t *testing.T) {
	r := Routine{FabMorning: true, Piano: true, FabEvening: true}
	assert.Equal(t, 3, r.HabitsDone())
	assert.Zero(t, Routine{}.HabitsDone())
}

func TestRoutineDecodesStringScores(t *testing.T) {
	var r Routine
	body := `{"Date":"2024-03-05","Sleep Score":"7","Protein %":"","Mood Score":8,"Workout":true}`
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, docstore.NewNumber(7), r.SleepScore)
	assert.False(t, r.ProteinPct.Valid)
	assert.Equal(t, 8.0, r.MoodScore.Float())
	assert.True(t, r.Workout)
}

func TestRepositoryFindRecent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("SortsByDateDescending", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Personal.Routines", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "Date", Value: "2024-03-06"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "Date", Value: "2024-03-05"}},
		))

		routines, err := newRepositoryFromCollection(mt.Coll).FindRecent(context.Background(), RecentLimit)
		require.NoError(mt, err)
		require.Len(mt, routines, 2)
		assert.Equal(mt, "2024-03-06", routines[0].Date)

		cmd := mt.GetStartedEvent().Command
		assert.EqualValues(mt, -1, cmd.Lookup("sort", "Date").AsInt64())
		assert.EqualValues(mt, RecentLimit, cmd.Lookup("limit").AsInt64())
	})
}

func TestHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("RecentDisablesCaching", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Personal.Routines", mtest.FirstBatch))
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recent", nil))

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.Equal(mt, noCache, rec.Header().Get("Cache-Control"))
		assert.JSONEq(mt, `[]`, rec.Body.String())
	})

	mt.Run("CreateReturnsStoredRoutine", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		body := `{"Date":"2024-03-05","Sleep Score":"7","Journal":"ok"}`
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

		require.Equal(mt, http.StatusCreated, rec.Code)
		var created Routine
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.False(mt, created.ID.IsZero())
		assert.Equal(mt, "ok", created.Journal)
		assert.Equal(mt, 7.0, created.SleepScore.Float())
	})

	mt.Run("CreateRequiresDate", func(mt *mtest.T) {
		h := Routes(NewHandler(NewService(newRepositoryFromCollection(mt.Coll))))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Journal":"x"}`)))

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}
