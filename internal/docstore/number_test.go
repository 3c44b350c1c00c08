package docstore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type scored struct {
	Score docstore.Number `bson:"score" json:"score"`
}

func TestNumberFromBSON(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  docstore.Number
	}{
		{"Int32", int32(3), docstore.NewNumber(3)},
		{"Int64", int64(7), docstore.NewNumber(7)},
		{"Double", 2.5, docstore.NewNumber(2.5)},
		{"NumericString", "0", docstore.NewNumber(0)},
		{"PaddedString", " 1.5 ", docstore.NewNumber(1.5)},
		{"BlankString", "", docstore.Number{}},
		{"Garbage", "soon", docstore.Number{}},
		{"Null", nil, docstore.Number{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.D{{Key: "score", Value: tc.value}})
			require.NoError(t, err)

			var got scored
			require.NoError(t, bson.Unmarshal(raw, &got))
			assert.Equal(t, tc.want, got.Score)
		})
	}

	t.Run("Missing", func(t *testing.T) {
		raw, err := bson.Marshal(bson.D{})
		require.NoError(t, err)

		var got scored
		require.NoError(t, bson.Unmarshal(raw, &got))
		assert.False(t, got.Score.Valid)
	})
}

func TestNumberToBSON(t *testing.T) {
	raw, err := bson.Marshal(scored{Score: docstore.NewNumber(4)})
	require.NoError(t, err)
	assert.Equal(t, bson.TypeInt32, bson.Raw(raw).Lookup("score").Type)

	raw, err = bson.Marshal(scored{Score: docstore.NewNumber(4.25)})
	require.NoError(t, err)
	assert.Equal(t, bson.TypeDouble, bson.Raw(raw).Lookup("score").Type)

	raw, err = bson.Marshal(scored{})
	require.NoError(t, err)
	assert.Equal(t, bson.TypeNull, bson.Raw(raw).Lookup("score").Type)
}

func TestNumberJSON(t *testing.T) {
	out, err := json.Marshal(scored{Score: docstore.NewNumber(3.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 3.5}`, string(out))

	out, err = json.Marshal(scored{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": null}`, string(out))

	var in scored
	require.NoError(t, json.Unmarshal([]byte(`{"score": "12"}`), &in))
	assert.Equal(t, docstore.NewNumber(12), in.Score)

	require.NoError(t, json.Unmarshal([]byte(`{"score": ""}`), &in))
	assert.False(t, in.Score.Valid)

	assert.Error(t, json.Unmarshal([]byte(`{"score": true}`), &in))
}
