package list

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "Lists"

// List names are unique. Parent is a weak back-reference by name and is
// never checked for existence or cycles.
type List struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Items  []Item             `bson:"list" json:"list"`
	Parent *string            `bson:"parent" json:"parent"`
}

// Item keeps any field the client sends beyond id, name and done in Extra.
type Item struct {
	ID    string                 `bson:"id,omitempty"`
	Name  string                 `bson:"name"`
	Done  bool                   `bson:"done"`
	Extra map[string]interface{} `bson:",inline"`
}

type itemDoc Item

var reservedItemKeys = []string{"id", "name", "done"}

// UnmarshalBSONValue also accepts the bare strings early lists stored.
func (i *Item) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		*i = Item{Name: bson.RawValue{Type: t, Value: data}.StringValue()}
	case bson.TypeEmbeddedDocument:
		var doc itemDoc
		if err := bson.Unmarshal(data, &doc); err != nil {
			return err
		}
		*i = Item(doc)
	case bson.TypeNull, bson.TypeUndefined:
		*i = Item{}
	default:
		return fmt.Errorf("cannot decode BSON %s into list item", t)
	}
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(i.Extra)+3)
	for k, v := range i.Extra {
		out[k] = v
	}
	if i.ID != "" {
		out["id"] = i.ID
	}
	out["name"] = i.Name
	out["done"] = i.Done
	return json.Marshal(out)
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*i = Item{Name: name}
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	item := Item{}
	if v, ok := raw["id"].(string); ok {
		item.ID = v
	}
	if v, ok := raw["name"].(string); ok {
		item.Name = v
	}
	if v, ok := raw["done"].(bool); ok {
		item.Done = v
	}
	for _, k := range reservedItemKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		item.Extra = raw
	}

	*i = item
	return nil
}

// fields renders the item as the flat document stored inside a list.
func (i Item) fields() bson.M {
	m := bson.M{}
	for k, v := range i.Extra {
		m[k] = v
	}
	if i.ID != "" {
		m["id"] = i.ID
	}
	m["name"] = i.Name
	m["done"] = i.Done
	return m
}

// ItemPatch holds only the item fields a client sent. A bare JSON string is
// a rename.
type ItemPatch struct {
	ID    string
	Name  *string
	Done  *bool
	Extra map[string]interface{}
}

func (p *ItemPatch) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*p = ItemPatch{Name: &name}
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	patch := ItemPatch{}
	if v, ok := raw["name"].(string); ok {
		patch.Name = &v
	}
	if v, ok := raw["done"].(bool); ok {
		patch.Done = &v
	}
	for _, k := range reservedItemKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		patch.Extra = raw
	}

	*p = patch
	return nil
}

func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Done == nil && len(p.Extra) == 0
}

// set renders the sent fields as $set paths under prefix. The id is never
// part of a merge.
func (p ItemPatch) set(prefix string) bson.M {
	m := bson.M{}
	for k, v := range p.Extra {
		m[prefix+k] = v
	}
	if p.Name != nil {
		m[prefix+"name"] = *p.Name
	}
	if p.Done != nil {
		m[prefix+"done"] = *p.Done
	}
	return m
}

// Item is the element an index update stores in place of the old one.
func (p ItemPatch) Item() Item {
	it := Item{ID: p.ID, Extra: p.Extra}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Done != nil {
		it.Done = *p.Done
	}
	return it
}
