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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// OptionsToModel translates desired index options into the driver's
// IndexOptionsBuilder, setting only the fields the user populated (absent =
// driver default). options.Index() returns a builder, not the IndexOptions
// struct itself: v2 applies every option through a Lister of closures rather
// than exposing a directly-settable struct, so this is also what
// mongo.IndexModel.Options expects.
//
// Numeric index versions need no enum mapping here: unlike the resource this
// controller's domain model is modeled on, the Go driver represents
// sphereIndexVersion/textIndexVersion as plain integers rather than a closed
// set of named variants plus a custom escape hatch, so the round-trip is a
// direct pointer-width conversion.
func OptionsToModel(o *v1.Options) *options.IndexOptionsBuilder {
	opts := options.Index()
	if o == nil {
		return opts
	}
	if o.Bits != nil {
		opts.SetBits(int32(*o.Bits))
	}
	if o.Collation != nil {
		opts.SetCollation(CollationToModel(o.Collation))
	}
	if o.DefaultLanguage != "" {
		opts.SetDefaultLanguage(o.DefaultLanguage)
	}
	if o.ExpireAfterSeconds != nil {
		opts.SetExpireAfterSeconds(int32(*o.ExpireAfterSeconds))
	}
	if o.Hidden != nil {
		opts.SetHidden(*o.Hidden)
	}
	if o.LanguageOverride != "" {
		opts.SetLanguageOverride(o.LanguageOverride)
	}
	if o.Max != nil {
		opts.SetMax(*o.Max)
	}
	if o.Min != nil {
		opts.SetMin(*o.Min)
	}
	if o.Name != "" {
		opts.SetName(o.Name)
	}
	if o.PartialFilterExpression != nil {
		opts.SetPartialFilterExpression(partialFilterExpressionToModel(o.PartialFilterExpression))
	}
	if o.Sparse != nil {
		opts.SetSparse(*o.Sparse)
	}
	if o.SphereIndexVersion != nil {
		opts.SetSphereVersion(int32(*o.SphereIndexVersion))
	}
	if o.TextIndexVersion != nil {
		opts.SetTextVersion(int32(*o.TextIndexVersion))
	}
	if o.Unique != nil {
		opts.SetUnique(*o.Unique)
	}
	if o.Weights != nil {
		opts.SetWeights(weightsToModel(o.Weights))
	}
	if o.WildcardProjection != nil {
		opts.SetWildcardProjection(wildcardProjectionToModel(o.WildcardProjection))
	}
	return opts
}

// wireToOptions is the inverse of OptionsToModel, decoding one wireIndex (an
// index document as reported by the server) back into the resource model
// for diffing. It never touches options.IndexOptions: that struct is a
// build-time option set, not something the driver round-trips a server
// response through.
func wireToOptions(w *wireIndex) *v1.Options {
	out := &v1.Options{
		Name:             w.Name,
		Unique:           w.Unique,
		Sparse:           w.Sparse,
		Hidden:           w.Hidden,
		Min:              w.Min,
		Max:              w.Max,
		DefaultLanguage:  w.DefaultLanguage,
		LanguageOverride: w.LanguageOverride,
		Collation:        wireCollationToResource(w.Collation),
	}
	if w.Bits != nil {
		out.Bits = ptr(uint32(*w.Bits))
	}
	if w.ExpireAfterSeconds != nil {
		out.ExpireAfterSeconds = ptr(uint64(*w.ExpireAfterSeconds))
	}
	if w.SphereIndexVersion != nil {
		out.SphereIndexVersion = ptr(uint32(*w.SphereIndexVersion))
	}
	if w.TextIndexVersion != nil {
		out.TextIndexVersion = ptr(uint32(*w.TextIndexVersion))
	}
	if m, ok := decodeRawDocument(w.PartialFilterExpression); ok {
		out.PartialFilterExpression = documentToMap(m, bsonToJSONValue, allEntries)
	}
	if m, ok := decodeRawDocument(w.Weights); ok {
		out.Weights = documentToMap(m, bsonToWeight, isWeight)
	}
	if m, ok := decodeRawDocument(w.WildcardProjection); ok {
		out.WildcardProjection = documentToMap(m, bsonToWildcardProjection, isWildcardProjection)
	}
	return out
}

func weightsToModel(w map[string]uint32) map[string]any {
	return mapToDocument(w, func(v uint32) any { return int32(v) }, allEntries)
}

func wildcardProjectionToModel(w map[string]v1.WildcardProjection) map[string]any {
	return mapToDocument(w, func(v v1.WildcardProjection) any { return int32(v) }, allEntries)
}

func bsonToWildcardProjection(v any) v1.WildcardProjection {
	if n, ok := asInt64(v); ok && n == 1 {
		return v1.Include
	}
	return v1.Exclude
}

func partialFilterExpressionToModel(m map[string]apiextensionsv1.JSON) map[string]any {
	return mapToDocument(m, jsonValueToBSON, allEntries)
}
