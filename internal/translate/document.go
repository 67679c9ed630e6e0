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
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

// documentToMap is the generic entry->value converter shared by weights,
// wildcardProjection and partialFilterExpression: every accepted entry
// (predicate true) is mapped through mapper; the rest are silently dropped.
func documentToMap[T any](doc map[string]any, mapper func(any) T, predicate func(string, any) bool) map[string]T {
	if doc == nil {
		return nil
	}
	result := make(map[string]T, len(doc))
	for k, v := range doc {
		if predicate(k, v) {
			result[k] = mapper(v)
		}
	}
	return result
}

// mapToDocument is the inverse of documentToMap.
func mapToDocument[T any](m map[string]T, mapper func(T) any, predicate func(string, T) bool) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for k, v := range m {
		if predicate(k, v) {
			result[k] = mapper(v)
		}
	}
	return result
}

func allEntries[T any](string, T) bool { return true }

func isWeight(_ string, v any) bool {
	switch v.(type) {
	case int32, int64, int:
		return true
	default:
		return false
	}
}

func bsonToWeight(v any) uint32 {
	switch n := v.(type) {
	case int32:
		return uint32(n)
	case int64:
		return uint32(n)
	case int:
		return uint32(n)
	default:
		return 0
	}
}

func isWildcardProjection(_ string, v any) bool {
	n, ok := asInt64(v)
	return ok && (n == 0 || n == 1)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// jsonValueToBSON decodes a JSON-encoded resource value into the generic
// Go value the driver's bson encoder accepts (map[string]any, []any,
// string, float64, bool, nil).
func jsonValueToBSON(v apiextensionsv1.JSON) any {
	var out any
	if err := json.Unmarshal(v.Raw, &out); err != nil {
		return nil
	}
	return out
}

// bsonToJSONValue re-encodes a generic bson-decoded value as a resource
// JSON value.
func bsonToJSONValue(v any) apiextensionsv1.JSON {
	raw, err := json.Marshal(normalizeBSON(v))
	if err != nil {
		return apiextensionsv1.JSON{Raw: []byte("null")}
	}
	return apiextensionsv1.JSON{Raw: raw}
}

// normalizeBSON recursively converts driver-decoded bson.D/bson.M/bson.A
// values into plain Go maps/slices so encoding/json can marshal them.
func normalizeBSON(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalizeBSON(e.Value)
		}
		return m
	case bson.M:
		return normalizeBSON(map[string]any(val))
	case bson.A:
		return normalizeBSON([]any(val))
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalizeBSON(e)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalizeBSON(e)
		}
		return a
	default:
		return val
	}
}
