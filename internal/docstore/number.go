package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Number is a numeric field that older documents stored as int32, int64,
// double or a numeric string. Blank strings, null and missing values decode
// as not Valid.
type Number struct {
	Value float64
	Valid bool
}

func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n Number) IsZero() bool {
	return !n.Valid
}

func (n Number) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

func (n Number) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !n.Valid {
		return bson.TypeNull, nil, nil
	}
	if n.Value == math.Trunc(n.Value) && n.Value >= math.MinInt32 && n.Value <= math.MaxInt32 {
		return bson.MarshalValue(int32(n.Value))
	}
	return bson.MarshalValue(n.Value)
}

func (n *Number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeDouble:
		*n = NewNumber(rv.Double())
	case bson.TypeInt32:
		*n = NewNumber(float64(rv.Int32()))
	case bson.TypeInt64:
		*n = NewNumber(float64(rv.Int64()))
	case bson.TypeDecimal128:
		return n.parse(rv.Decimal128().String())
	case bson.TypeString:
		return n.parse(rv.StringValue())
	case bson.TypeBoolean:
		if rv.Boolean() {
			*n = NewNumber(1)
		} else {
			*n = NewNumber(0)
		}
	case bson.TypeNull, bson.TypeUndefined:
		*n = Number{}
	default:
		return fmt.Errorf("cannot decode BSON %s into Number", t)
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return n.parse(s)
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = NewNumber(v)
	return nil
}

// parse treats blank and non-numeric text as absent rather than failing the
// whole document.
func (n *Number) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = Number{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		*n = Number{}
		return nil
	}
	*n = NewNumber(v)
	return nil
}
