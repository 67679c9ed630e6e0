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

// Package translate is the bidirectional mapping between the api/v1 resource
// schema and go.mongodb.org/mongo-driver/v2/mongo/options' option types. The
// index-side translators come in pairs (IndexToModel/DecodeObservedIndex,
// OptionsToModel/wireToOptions, CollationToModel/wireCollationToResource):
// every valid resource value maps to a driver value and back, per spec.md's
// round-trip laws.
package translate

import (
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// CollationToModel translates a resource Collation into the driver's
// Collation. There is no lossy step: every field maps one-to-one.
func CollationToModel(c *v1.Collation) *options.Collation {
	if c == nil {
		return nil
	}
	return &options.Collation{
		Locale:          c.Locale,
		CaseLevel:       c.CaseLevel,
		CaseFirst:       string(caseFirstOrDefault(c.CaseFirst)),
		Strength:        int(strengthOrDefault(c.Strength)),
		NumericOrdering: c.NumericOrdering,
		Alternate:       string(alternateOrDefault(c.Alternate)),
		MaxVariable:     string(maxVariableOrDefault(c.MaxVariable)),
		Normalization:   c.Normalization,
		Backwards:       c.Backwards,
	}
}

// wireCollationToResource is the inverse of CollationToModel, decoding the
// collation sub-document the server echoes back in listIndexes. It carries
// no optionality of its own, so every field is taken as-is with the
// documented default substituted for an empty enum string.
func wireCollationToResource(c *wireCollation) *v1.Collation {
	if c == nil {
		return nil
	}
	return &v1.Collation{
		Locale:          c.Locale,
		Alternate:       alternateOrDefault(v1.CollationAlternate(c.Alternate)),
		Backwards:       c.Backwards,
		CaseFirst:       caseFirstOrDefault(v1.CollationCaseFirst(c.CaseFirst)),
		CaseLevel:       c.CaseLevel,
		MaxVariable:     maxVariableOrDefault(v1.CollationMaxVariable(c.MaxVariable)),
		Normalization:   c.Normalization,
		NumericOrdering: c.NumericOrdering,
		Strength:        strengthOrDefault(v1.CollationStrength(c.Strength)),
	}
}

func alternateOrDefault(a v1.CollationAlternate) v1.CollationAlternate {
	if a == "" {
		return v1.NonIgnorable
	}
	return a
}

func caseFirstOrDefault(c v1.CollationCaseFirst) v1.CollationCaseFirst {
	if c == "" {
		return v1.Off
	}
	return c
}

func maxVariableOrDefault(m v1.CollationMaxVariable) v1.CollationMaxVariable {
	if m == "" {
		return v1.Punct
	}
	return m
}

func strengthOrDefault(s v1.CollationStrength) v1.CollationStrength {
	if s == 0 {
		return v1.Tertiary
	}
	return s
}
