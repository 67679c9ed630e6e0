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

import "go.mongodb.org/mongo-driver/v2/bson"

// wireIndex mirrors one element of the array returned by the server for
// Collection.Indexes().List, tagged with MongoDB's actual listIndexes field
// names rather than the driver's options.IndexOptions, which is a build-time
// option set, not a decode target, and does not carry matching bson tags.
// Sub-documents that feed the generic converters are kept as raw bytes and
// decoded separately, since their shape depends on the index type.
type wireIndex struct {
	Key                bson.D         `bson:"key"`
	Name               string         `bson:"name"`
	Unique             *bool          `bson:"unique"`
	Sparse             *bool          `bson:"sparse"`
	Hidden             *bool          `bson:"hidden"`
	ExpireAfterSeconds *int32         `bson:"expireAfterSeconds"`
	Collation          *wireCollation `bson:"collation"`
	Bits               *int32         `bson:"bits"`
	Min                *float64       `bson:"min"`
	Max                *float64       `bson:"max"`

	// default_language and language_override keep their server-side
	// underscores; case-insensitive bson matching does not bridge that to
	// the camelCase names the rest of the document uses.
	DefaultLanguage  string `bson:"default_language"`
	LanguageOverride string `bson:"language_override"`

	TextIndexVersion   *int32 `bson:"textIndexVersion"`
	SphereIndexVersion *int32 `bson:"2dsphereIndexVersion"`

	PartialFilterExpression bson.Raw `bson:"partialFilterExpression"`
	Weights                 bson.Raw `bson:"weights"`
	WildcardProjection      bson.Raw `bson:"wildcardProjection"`
}

// wireCollation mirrors the collation sub-document the server echoes back,
// which uses the same field names options.Collation does.
type wireCollation struct {
	Locale          string `bson:"locale"`
	CaseLevel       bool   `bson:"caseLevel"`
	CaseFirst       string `bson:"caseFirst"`
	Strength        int    `bson:"strength"`
	NumericOrdering bool   `bson:"numericOrdering"`
	Alternate       string `bson:"alternate"`
	MaxVariable     string `bson:"maxVariable"`
	Normalization   bool   `bson:"normalization"`
	Backwards       bool   `bson:"backwards"`
}

// decodeRawDocument turns a possibly-absent raw bson sub-document into a
// generic map for the shared documentToMap converters.
func decodeRawDocument(raw bson.Raw) (map[string]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return map[string]any(m), true
}
