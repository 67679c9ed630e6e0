/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package translate

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// IndexToModel translates a desired Index into the driver's IndexModel,
// ready to hand to Collection.Indexes().CreateOne.
func IndexToModel(index v1.Index) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keysToDocument(index.Keys),
		Options: OptionsToModel(index.Options),
	}
}

// DecodeObservedIndexes translates the raw index documents reported by the
// server into the resource model, dropping the clustered _id index: it is
// not user-declarable and must never enter the diff.
func DecodeObservedIndexes(raws []bson.Raw) ([]v1.Index, error) {
	result := make([]v1.Index, 0, len(raws))
	for _, raw := range raws {
		idx, err := DecodeObservedIndex(raw)
		if err != nil {
			return nil, err
		}
		if isNotClustered(idx) {
			result = append(result, idx)
		}
	}
	return result, nil
}

// DecodeObservedIndex decodes one entry from Collection.Indexes().List
// against the server's actual field names (see wireIndex), bypassing the
// driver's options.IndexOptions entirely: that type is a build-time option
// set, not a decode target, and its field names don't match the wire.
func DecodeObservedIndex(raw bson.Raw) (v1.Index, error) {
	var w wireIndex
	if err := bson.Unmarshal(raw, &w); err != nil {
		return v1.Index{}, err
	}
	opts := wireToOptions(&w)
	return v1.Index{
		Keys:    documentToKeys(w.Key, opts),
		Options: opts,
	}, nil
}

const clusteredName = "_id_"

func isNotClustered(index v1.Index) bool {
	return index.Options == nil || index.Options.Name != clusteredName
}

// documentToKeys recovers the user-facing key list from a server-reported
// key document. A text index's observed keys are the driver's synthetic
// _fts/_ftsx pair, not the original fields, so when any observed key is a
// text key the whole list is replaced by one text key per weighted field.
func documentToKeys(keys bson.D, opts *v1.Options) []v1.Key {
	original := make([]v1.Key, 0, len(keys))
	for _, e := range keys {
		if k, ok := bsonEntryToKey(e.Key, e.Value); ok {
			original = append(original, k)
		}
	}
	if anyTextIndex(original) {
		if recovered, ok := textIndexKeys(opts); ok {
			return recovered
		}
	}
	return original
}

func anyTextIndex(keys []v1.Key) bool {
	for _, k := range keys {
		if k.IndexType != nil && *k.IndexType == v1.Text {
			return true
		}
	}
	return false
}

// textIndexKeys rebuilds the text-indexed field list from options.weights,
// the only place the server preserves the original field names.
func textIndexKeys(opts *v1.Options) ([]v1.Key, bool) {
	if opts == nil || opts.Weights == nil {
		return nil, false
	}
	keys := make([]v1.Key, 0, len(opts.Weights))
	for field := range opts.Weights {
		keys = append(keys, v1.Key{Field: field, IndexType: ptr(v1.Text)})
	}
	return keys, true
}

func bsonEntryToKey(field string, value any) (v1.Key, bool) {
	switch v := value.(type) {
	case int32:
		if d, ok := direction(v); ok {
			return v1.Key{Field: field, Direction: ptr(d)}, true
		}
		return v1.Key{}, false
	case int64:
		if d, ok := direction(int32(v)); ok {
			return v1.Key{Field: field, Direction: ptr(d)}, true
		}
		return v1.Key{}, false
	case string:
		if t, ok := indexType(v); ok {
			return v1.Key{Field: field, IndexType: ptr(t)}, true
		}
		return v1.Key{}, false
	default:
		return v1.Key{}, false
	}
}

func direction(v int32) (v1.Direction, bool) {
	switch v {
	case int32(v1.Ascending):
		return v1.Ascending, true
	case int32(v1.Descending):
		return v1.Descending, true
	default:
		return 0, false
	}
}

func indexType(v string) (v1.IndexType, bool) {
	switch v1.IndexType(v) {
	case v1.Hashed, v1.Text, v1.TwoDimensional, v1.TwoDimensionalSphere:
		return v1.IndexType(v), true
	default:
		return "", false
	}
}

func keysToDocument(keys []v1.Key) bson.D {
	doc := make(bson.D, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k.Field, Value: keyToBSON(k)})
	}
	return doc
}

func keyToBSON(k v1.Key) any {
	if k.Direction != nil {
		return int32(*k.Direction)
	}
	if k.IndexType != nil {
		return string(*k.IndexType)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
