package list

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestItemBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "name", Value: "Movies"},
		{Key: "list", Value: bson.A{
			"Heat",
			bson.D{
				{Key: "id", Value: "abc"},
				{Key: "name", Value: "Alien"},
				{Key: "done", Value: true},
				{Key: "rating", Value: int32(5)},
			},
		}},
		{Key: "parent", Value: "Media"},
	})
	require.NoError(t, err)

	var l List
	require.NoError(t, bson.Unmarshal(raw, &l))
	require.Len(t, l.Items, 2)
	assert.Equal(t, Item{Name: "Heat"}, l.Items[0])
	assert.Equal(t, "abc", l.Items[1].ID)
	assert.True(t, l.Items[1].Done)
	assert.EqualValues(t, 5, l.Items[1].Extra["rating"])
	require.NotNil(t, l.Parent)
	assert.Equal(t, "Media", *l.Parent)
}

func TestItemJSON(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alien","done":false,"length":"117m","notes":""}`), &it))
	assert.Equal(t, "Alien", it.Name)
	assert.Equal(t, map[string]interface{}{"length": "117m", "notes": ""}, it.Extra)

	out, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alien","done":false,"length":"117m","notes":""}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`"Heat"`), &it))
	assert.Equal(t, Item{Name: "Heat"}, it)
}

func TestItemFieldsFlattenExtras(t *testing.T) {
	it := Item{ID: "1", Name: "Alien", Extra: map[string]interface{}{"rating": 5}}
	assert.Equal(t, bson.M{"id": "1", "name": "Alien", "done": false, "rating": 5}, it.fields())
}

func TestItemPatchKeepsOnlySentFields(t *testing.T) {
	var patch ItemPatch
	require.NoError(t, json.Unmarshal([]byte(`{"done":true}`), &patch))
	assert.Nil(t, patch.Name)
	assert.Equal(t, bson.M{"list.$.done": true}, patch.set("list.$."))

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","name":"Milk","qty":2}`), &patch))
	assert.Nil(t, patch.Done)
	assert.Empty(t, patch.ID)
	assert.Equal(t, bson.M{"list.$.name": "Milk", "list.$.qty": float64(2)}, patch.set("list.$."))

	require.NoError(t, json.Unmarshal([]byte(`"Oat milk"`), &patch))
	assert.Equal(t, bson.M{"list.$.name": "Oat milk"}, patch.set("list.$."))

	require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))
	assert.True(t, patch.IsEmpty())
}
