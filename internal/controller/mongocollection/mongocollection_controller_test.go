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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

var _ = Describe("MongoCollection reconciliation", func() {

	Context("key validation", func() {
		It("rejects a key naming both a direction and an index type", func() {
			indexes := []v1.Index{{
				Keys: []v1.Key{{Field: "x", Direction: ptr(v1.Ascending), IndexType: ptr(v1.Hashed)}},
			}}

			Expect(invalidKeys(indexes)).To(Equal([]string{"x"}))
		})

		It("accepts a key naming only a direction", func() {
			indexes := []v1.Index{{Keys: []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}}}}

			Expect(invalidKeys(indexes)).To(BeEmpty())
		})
	})

	Context("index planning", func() {
		It("creates the declared index against an empty observed set", func() {
			desired := []v1.Index{{
				Keys:    []v1.Key{{Field: "email", Direction: ptr(v1.Ascending)}},
				Options: &v1.Options{Unique: ptr(true), Name: "email_uniq"},
			}}

			drops, creates := plan(desired, nil)

			Expect(drops).To(BeEmpty())
			Expect(creates).To(HaveLen(1))
		})

		It("reports no change once the declared index already exists", func() {
			index := v1.Index{
				Keys:    []v1.Key{{Field: "email", Direction: ptr(v1.Ascending)}},
				Options: &v1.Options{Unique: ptr(true), Name: "email_uniq"},
			}

			drops, creates := plan([]v1.Index{index}, []v1.Index{index})

			Expect(drops).To(BeEmpty())
			Expect(creates).To(BeEmpty())
		})

		It("drops then recreates an index whose options changed", func() {
			desired := []v1.Index{{
				Keys:    []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}},
				Options: &v1.Options{Unique: ptr(true), Name: "X"},
			}}
			observed := []v1.Index{{
				Keys:    []v1.Key{{Field: "x", Direction: ptr(v1.Ascending)}},
				Options: &v1.Options{Unique: ptr(false), Name: "X"},
			}}

			drops, creates := plan(desired, observed)

			Expect(drops).To(ConsistOf("X"))
			Expect(creates).To(HaveLen(1))
		})
	})

	Context("collection naming", func() {
		It("falls back to metadata.name when spec.name is unset", func() {
			cr := &v1.MongoCollection{}
			cr.Name = "users"

			Expect(collectionName(cr)).To(Equal("users"))
		})

		It("prefers spec.name when set", func() {
			cr := &v1.MongoCollection{}
			cr.Name = "users"
			cr.Spec.Name = "override"

			Expect(collectionName(cr)).To(Equal("override"))
		})
	})

	Context("status re-entry", func() {
		It("treats a CR with no status as ready to proceed", func() {
			cr := &v1.MongoCollection{}
			Expect(isNotReady(cr)).To(BeFalse())
		})

		It("treats a CR whose last phase was Error as not ready", func() {
			cr := &v1.MongoCollection{}
			cr.Status.Phase = v1.PhaseError
			Expect(isNotReady(cr)).To(BeTrue())
		})
	})
})
