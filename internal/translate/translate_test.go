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
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

func tptr[T any](v T) *T { return &v }

// materialize applies a builder's accumulated setters to a concrete
// IndexOptions, the same way the driver does internally before sending a
// createIndexes command. Tests use this to inspect what OptionsToModel
// actually configured without depending on driver-internal merge helpers.
func materialize(b *options.IndexOptionsBuilder) *options.IndexOptions {
	opts := &options.IndexOptions{}
	for _, set := range b.List() {
		_ = set(opts)
	}
	return opts
}

func TestOptionsToModelSetsSimpleFields(t *testing.T) {
	in := &v1.Options{
		Unique:             tptr(true),
		Sparse:             tptr(false),
		Name:               "email_uniq",
		Bits:               tptr(uint32(26)),
		ExpireAfterSeconds: tptr(uint64(3600)),
	}

	out := materialize(OptionsToModel(in))

	if out.Unique == nil || *out.Unique != true {
		t.Fatalf("unique not set: %+v", out)
	}
	if out.Name == nil || *out.Name != "email_uniq" {
		t.Fatalf("name not set: %+v", out)
	}
	if out.Bits == nil || *out.Bits != 26 {
		t.Fatalf("bits not set: %+v", out)
	}
	if out.ExpireAfterSeconds == nil || *out.ExpireAfterSeconds != 3600 {
		t.Fatalf("expireAfterSeconds not set: %+v", out)
	}
}

func TestOptionsToModelSetsSphereAndTextVersion(t *testing.T) {
	// sphereIndexVersion=4 exercises a value the Rust original would have
	// needed a Custom(4) variant to represent; the Go driver takes it as a
	// plain int32 with no enum mapping required.
	in := &v1.Options{
		SphereIndexVersion: tptr(uint32(4)),
		TextIndexVersion:   tptr(uint32(3)),
	}

	out := materialize(OptionsToModel(in))

	if out.SphereVersion == nil || *out.SphereVersion != 4 {
		t.Fatalf("sphereIndexVersion not set: %+v", out)
	}
	if out.TextVersion == nil || *out.TextVersion != 3 {
		t.Fatalf("textIndexVersion not set: %+v", out)
	}
}

func TestOptionsToModelNilReturnsEmptyBuilder(t *testing.T) {
	out := materialize(OptionsToModel(nil))

	if out.Unique != nil || out.Name != nil || out.Bits != nil {
		t.Fatalf("expected an empty IndexOptions, got %+v", out)
	}
}

func TestIndexToModelOptionsIsABuilder(t *testing.T) {
	in := v1.Index{
		Keys:    []v1.Key{{Field: "email", Direction: tptr(v1.Ascending)}},
		Options: &v1.Options{Unique: tptr(true), Name: "email_uniq"},
	}

	model := IndexToModel(in)

	keys, ok := model.Keys.(bson.D)
	if !ok {
		t.Fatalf("expected bson.D keys, got %T", model.Keys)
	}
	if len(keys) != 1 || keys[0].Key != "email" {
		t.Fatalf("unexpected keys: %+v", keys)
	}

	builder, ok := model.Options.(*options.IndexOptionsBuilder)
	if !ok {
		t.Fatalf("expected *options.IndexOptionsBuilder, got %T", model.Options)
	}
	opts := materialize(builder)
	if opts.Unique == nil || !*opts.Unique {
		t.Fatalf("unique lost: %+v", opts)
	}
}

// rawIndexDocument assembles a listIndexes-shaped document using MongoDB's
// real wire field names, including the underscored default_language and
// language_override that a naive bson.Unmarshal into options.IndexOptions
// would silently drop.
func rawIndexDocument(t *testing.T, extra bson.D) bson.Raw {
	t.Helper()
	doc := append(bson.D{
		{Key: "key", Value: bson.D{{Key: "title", Value: "text"}}},
		{Key: "name", Value: "title_text"},
	}, extra...)
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal wire document: %v", err)
	}
	return raw
}

func TestDecodeObservedIndexPreservesUnderscoredLanguageFields(t *testing.T) {
	raw := rawIndexDocument(t, bson.D{
		{Key: "default_language", Value: "spanish"},
		{Key: "language_override", Value: "idioma"},
		{Key: "textIndexVersion", Value: int32(3)},
		{Key: "2dsphereIndexVersion", Value: int32(3)},
	})

	idx, err := DecodeObservedIndex(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if idx.Options == nil {
		t.Fatalf("expected options, got nil")
	}
	if idx.Options.DefaultLanguage != "spanish" {
		t.Fatalf("default_language lost: %+v", idx.Options)
	}
	if idx.Options.LanguageOverride != "idioma" {
		t.Fatalf("language_override lost: %+v", idx.Options)
	}
	if idx.Options.TextIndexVersion == nil || *idx.Options.TextIndexVersion != 3 {
		t.Fatalf("textIndexVersion lost: %+v", idx.Options)
	}
	if idx.Options.SphereIndexVersion == nil || *idx.Options.SphereIndexVersion != 3 {
		t.Fatalf("2dsphereIndexVersion lost: %+v", idx.Options)
	}
}

func TestDecodeObservedIndexWeightsAndWildcardProjection(t *testing.T) {
	raw := rawIndexDocument(t, bson.D{
		{Key: "weights", Value: bson.D{{Key: "title", Value: int32(10)}, {Key: "body", Value: int32(1)}}},
		{Key: "wildcardProjection", Value: bson.D{{Key: "a", Value: int32(1)}, {Key: "b", Value: int32(0)}}},
	})

	idx, err := DecodeObservedIndex(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(idx.Options.Weights) != 2 || idx.Options.Weights["title"] != 10 || idx.Options.Weights["body"] != 1 {
		t.Fatalf("weights lost: %+v", idx.Options.Weights)
	}
	if idx.Options.WildcardProjection["a"] != v1.Include || idx.Options.WildcardProjection["b"] != v1.Exclude {
		t.Fatalf("wildcardProjection lost: %+v", idx.Options.WildcardProjection)
	}
}

func TestDecodeObservedIndexDropsClusteredID(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "key", Value: bson.D{{Key: "_id", Value: int32(1)}}},
		{Key: "name", Value: clusteredName},
	})
	if err != nil {
		t.Fatalf("failed to marshal wire document: %v", err)
	}

	indexes, err := DecodeObservedIndexes([]bson.Raw{raw})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(indexes) != 0 {
		t.Fatalf("expected the clustered _id index to be dropped, got %+v", indexes)
	}
}

func TestTextIndexKeyRecovery(t *testing.T) {
	keys := bson.D{{Key: "_fts", Value: "text"}, {Key: "_ftsx", Value: int32(1)}}
	opts := &v1.Options{Weights: map[string]uint32{"title": 10, "body": 1}}

	recovered := documentToKeys(keys, opts)

	if len(recovered) != 2 {
		t.Fatalf("expected 2 recovered text-index keys, got %d: %+v", len(recovered), recovered)
	}
	seen := map[string]bool{}
	for _, k := range recovered {
		if k.IndexType == nil || *k.IndexType != v1.Text {
			t.Fatalf("expected recovered key to be a text key: %+v", k)
		}
		seen[k.Field] = true
	}
	if !seen["title"] || !seen["body"] {
		t.Fatalf("expected title and body recovered, got %+v", recovered)
	}
}

func TestTextIndexKeyRecoveryFallsBackWithoutWeights(t *testing.T) {
	keys := bson.D{{Key: "_fts", Value: "text"}, {Key: "_ftsx", Value: int32(1)}}

	recovered := documentToKeys(keys, nil)

	if len(recovered) != 2 {
		t.Fatalf("expected raw observed keys kept when weights absent, got %+v", recovered)
	}
}
