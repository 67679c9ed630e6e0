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

package mongocollection

import (
	"testing"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

func ptr[T any](v T) *T { return &v }

func TestPlanNoopWhenEquivalent(t *testing.T) {
	desired := []v1.Index{{
		Keys:    []v1.Key{{Field: "email", Direction: ptr(v1.Ascending)}},
		Options: &v1.Options{Unique: ptr(true), Name: "email_uniq"},
	}}
	observed := []v1.Index{{
		Keys:    []v1.Key{{Field: "email", Direction: ptr(v1.Ascending)}},
		Options: &v1.Options{Unique: ptr(true), Name: "email_uniq"},
	}}

	drops, creates := plan(desired, observed)
	if len(drops) != 0 || len(creates) != 0 {
		t.Fatalf("expected a no-op plan, got drops=%v creates=%v", drops, creates)
	}
}

func TestPlanCreateWhenMissing(t *testing.T) {
	desired := []v1.Index{{Keys: []v1.Key{{Field: "email", Direction: ptr(v1.Ascending)}}, Options: &v1.Options{Name: "email_uniq"}}}

	drops, creates := plan(desired, nil)
	if len(drops) != 0 {
		t.Fatalf("expected no drops, got %v", drops)
	}
	if len(creates) != 1 {
		t.Fatalf("expected one create, got %v", creates)
	}
}

func TestPlanDropAndReplaceOnOptionChange(t *testing.T) {
	desired := []v1.Index{{
		Keys:    []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}},
		Options: &v1.Options{Unique: ptr(true), Name: "X"},
	}}
	observed := []v1.Index{{
		Keys:    []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}},
		Options: &v1.Options{Unique: ptr(false), Name: "X"},
	}}

	drops, creates := plan(desired, observed)
	if len(drops) != 1 || drops[0] != "X" {
		t.Fatalf("expected drop of X, got %v", drops)
	}
	if len(creates) != 1 {
		t.Fatalf("expected re-create of X, got %v", creates)
	}
}

func TestPlanSkipsUnnamedObservedDrop(t *testing.T) {
	observed := []v1.Index{{Keys: []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}}}}

	drops, _ := plan(nil, observed)
	if len(drops) != 0 {
		t.Fatalf("expected unnamed observed index to be skipped from the drop set, got %v", drops)
	}
}

func TestInvalidKeysDetectsConflict(t *testing.T) {
	indexes := []v1.Index{{Keys: []v1.Key{{Field: "x", Direction: ptr(v1.Ascending), IndexType: ptr(v1.Hashed)}}}}

	fields := invalidKeys(indexes)
	if len(fields) != 1 || fields[0] != "x" {
		t.Fatalf("expected InvalidKeys(x), got %v", fields)
	}
}

func TestCollectionNameFallsBackToMetadataName(t *testing.T) {
	cr := &v1.MongoCollection{}
	cr.Name = "users"
	if collectionName(cr) != "users" {
		t.Fatalf("expected collection name to fall back to metadata.name")
	}
	cr.Spec.Name = "override"
	if collectionName(cr) != "override" {
		t.Fatalf("expected spec.name to override metadata.name")
	}
}
