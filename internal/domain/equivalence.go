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

// Package domain implements the index-equivalence comparator: the semantic
// "is this observed index the same as that desired one" rule that makes
// reconciliation idempotent. It operates directly on the api/v1 wire types,
// the same way the resource this controller is modeled on folds equivalence
// into its own resource structs rather than an intermediate model.
package domain

import (
	"reflect"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

const (
	defaultBits                = uint32(26)
	defaultLanguage            = "english"
	defaultLanguageOverride    = "language"
	defaultMax                 = 180.0
	defaultMin                 = -180.0
)

// IndexesEquivalent reports whether a and b describe the same index: the
// same key set (order-independent) and equivalent options.
func IndexesEquivalent(a, b v1.Index) bool {
	return sameKeys(a.Keys, b.Keys) && OptionsEquivalent(a.Options, b.Options)
}

// ContainsEquivalentIndex reports whether indexes contains an index
// equivalent to target.
func ContainsEquivalentIndex(indexes []v1.Index, target v1.Index) bool {
	for _, i := range indexes {
		if IndexesEquivalent(i, target) {
			return true
		}
	}
	return false
}

// sameKeys is set equality over key lists: same length, every key of a
// present in b. Keys compare by value (field, direction, indexType).
func sameKeys(a, b []v1.Key) bool {
	if len(a) != len(b) {
		return false
	}
	for _, k := range a {
		if !containsKey(b, k) {
			return false
		}
	}
	return true
}

func containsKey(keys []v1.Key, k v1.Key) bool {
	for _, o := range keys {
		if keysEqual(k, o) {
			return true
		}
	}
	return false
}

func keysEqual(a, b v1.Key) bool {
	if a.Field != b.Field {
		return false
	}
	if !directionEqual(a.Direction, b.Direction) {
		return false
	}
	return indexTypeEqual(a.IndexType, b.IndexType)
}

func directionEqual(a, b *v1.Direction) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func indexTypeEqual(a, b *v1.IndexType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// OptionsEquivalent is the relaxed equality rule of the index-equality
// invariant: name is ignored, defaulted fields fold against their documented
// default, and server-chosen fields (sphere/text index version, weights)
// compare equal whenever either side is unset. An absent Options block
// compares equal to one whose every field is at its default.
func OptionsEquivalent(a, b *v1.Options) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return optionsIsDefault(b)
	}
	if b == nil {
		return optionsIsDefault(a)
	}
	return optionsEqual(a, b)
}

func optionsEqual(a, b *v1.Options) bool {
	return equalUint32Ptr(a.Bits, b.Bits) &&
		reflect.DeepEqual(a.Collation, b.Collation) &&
		languageEqual(a.DefaultLanguage, b.DefaultLanguage, defaultLanguage) &&
		equalUint64Ptr(a.ExpireAfterSeconds, b.ExpireAfterSeconds) &&
		equalBoolPtr(a.Hidden, b.Hidden) &&
		languageEqual(a.LanguageOverride, b.LanguageOverride, defaultLanguageOverride) &&
		equalFloat64Ptr(a.Max, b.Max) &&
		equalFloat64Ptr(a.Min, b.Min) &&
		reflect.DeepEqual(a.PartialFilterExpression, b.PartialFilterExpression) &&
		equalBoolPtr(a.Sparse, b.Sparse) &&
		(equalUint32Ptr(a.SphereIndexVersion, b.SphereIndexVersion) || a.SphereIndexVersion == nil || b.SphereIndexVersion == nil) &&
		(equalUint32Ptr(a.TextIndexVersion, b.TextIndexVersion) || a.TextIndexVersion == nil || b.TextIndexVersion == nil) &&
		equalBoolPtr(a.Unique, b.Unique) &&
		(reflect.DeepEqual(a.Weights, b.Weights) || a.Weights == nil || b.Weights == nil) &&
		reflect.DeepEqual(a.WildcardProjection, b.WildcardProjection)
}

// languageEqual compares two optional language strings, folding an unset
// side against def when the other side explicitly names it.
func languageEqual(a, b, def string) bool {
	if a == b {
		return true
	}
	return (a == "" && b == def) || (b == "" && a == def)
}

// optionsIsDefault reports whether every field of o, except name, is at its
// documented MongoDB server default.
func optionsIsDefault(o *v1.Options) bool {
	if o == nil {
		return true
	}
	return (o.Bits == nil || *o.Bits == defaultBits) &&
		o.Collation == nil &&
		(o.DefaultLanguage == "" || o.DefaultLanguage == defaultLanguage) &&
		o.ExpireAfterSeconds == nil &&
		(o.Hidden == nil || !*o.Hidden) &&
		(o.LanguageOverride == "" || o.LanguageOverride == defaultLanguageOverride) &&
		(o.Max == nil || *o.Max == defaultMax) &&
		(o.Min == nil || *o.Min == defaultMin) &&
		o.PartialFilterExpression == nil &&
		(o.Sparse == nil || !*o.Sparse) &&
		o.SphereIndexVersion == nil &&
		o.TextIndexVersion == nil &&
		(o.Unique == nil || !*o.Unique) &&
		o.Weights == nil &&
		o.WildcardProjection == nil
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalUint32Ptr(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalUint64Ptr(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloat64Ptr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
