package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"iil_api/internal/domain"
)

// toDocument encodes record and strips any caller-supplied _id so the
// store always assigns one.
func toDocument(record any) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	out := d[:0]
	for _, e := range d {
		if e.Key != "_id" {
			out = append(out, e)
		}
	}
	return out, nil
}

// toFilter turns a hex "_id" into an ObjectID; everything else passes through.
func toFilter(f domain.Filter) bson.M {
	out := bson.M{}
	for k, v := range f {
		if s, ok := v.(string); ok && k == "_id" {
			if oid, err := primitive.ObjectIDFromHex(s); err == nil {
				out[k] = oid
				continue
			}
		}
		out[k] = v
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func normalize(m bson.M) domain.Document {
	out := make(domain.Document, len(m))
	for k, v := range m {
		if k == "_id" {
			out[k] = idString(v)
			continue
		}
		out[k] = plain(v)
	}
	return out
}

// plain converts driver container types into the map/slice shapes the
// domain validators accept.
func plain(v any) any {
	switch x := v.(type) {
	case bson.M:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = plain(e)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		s := make([]any, len(x))
		for i, e := range x {
			s[i] = plain(e)
		}
		return s
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Decimal128:
		return x.String()
	case time.Time:
		return x.UTC()
	default:
		return v
	}
}
