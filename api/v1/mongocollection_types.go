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

package v1

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EDIT THIS FILE!  THIS IS SCAFFOLDING FOR YOU TO OWN!
// NOTE: json tags are required.  Any new fields you add must have json tags for the fields to be serialized.

// MongoCollectionSpec defines the desired state of a MongoCollection.
type MongoCollectionSpec struct {
	// Name overrides the target collection name. Defaults to metadata.name.
	// +optional
	Name string `json:"name,omitempty"`

	// Capped marks the collection as a fixed-size capped collection.
	// +optional
	Capped *bool `json:"capped,omitempty"`

	// Max is the maximum number of documents allowed in a capped collection.
	// +optional
	Max *uint64 `json:"max,omitempty"`

	// Size is the maximum size in bytes for a capped collection.
	// +optional
	Size *uint64 `json:"size,omitempty"`

	// Clustered enables a clustered _id index with default driver settings.
	// +optional
	Clustered *bool `json:"clustered,omitempty"`

	// ChangeStreamPreAndPostImages toggles pre/post image recording for change streams.
	// +optional
	ChangeStreamPreAndPostImages *bool `json:"changeStreamPreAndPostImages,omitempty"`

	// Collation sets the default collation for the collection.
	// +optional
	Collation *Collation `json:"collation,omitempty"`

	// ExpireAfterSeconds is the collection-level TTL in seconds.
	// +optional
	ExpireAfterSeconds *uint64 `json:"expireAfterSeconds,omitempty"`

	// TimeSeries configures the collection as a time-series collection.
	// +optional
	TimeSeries *TimeSeries `json:"timeSeries,omitempty"`

	// Validator is a JSON document validator applied to the collection.
	// +optional
	Validator *apiextensionsv1.JSON `json:"validator,omitempty"`

	// ValidationAction controls what happens when a document fails validation.
	// +optional
	// +kubebuilder:validation:Enum=error;warn
	ValidationAction string `json:"validationAction,omitempty"`

	// ValidationLevel controls which operations are checked against the validator.
	// +optional
	// +kubebuilder:validation:Enum=off;moderate;strict
	ValidationLevel string `json:"validationLevel,omitempty"`

	// Indexes is the ordered list of indexes this collection must have.
	// +optional
	Indexes []Index `json:"indexes,omitempty"`
}

// Direction is a B-tree index key direction.
// +kubebuilder:validation:Enum=1;-1
type Direction int32

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// IndexType is a non-B-tree index key type.
// +kubebuilder:validation:Enum=hashed;text;2d;2dsphere
type IndexType string

const (
	Hashed               IndexType = "hashed"
	Text                 IndexType = "text"
	TwoDimensional       IndexType = "2d"
	TwoDimensionalSphere IndexType = "2dsphere"
)

// Key is a single field of an index, either a directional B-tree key or a
// typed key (hashed, text, 2d, 2dsphere). Exactly one of Direction and
// IndexType may be set; both set is an InvalidKeys error.
type Key struct {
	// Field is the dotted document path this key indexes.
	Field string `json:"field"`

	// Direction is set for ascending/descending B-tree keys.
	// +optional
	Direction *Direction `json:"direction,omitempty"`

	// IndexType is set for hashed/text/2d/2dsphere keys.
	// +optional
	IndexType *IndexType `json:"indexType,omitempty"`
}

// Index is a single user-declared index: an ordered, non-empty key list plus
// optional options.
type Index struct {
	// Keys is the non-empty ordered list of index keys.
	Keys []Key `json:"keys"`

	// Options holds index-creation options.
	// +optional
	Options *Options `json:"options,omitempty"`
}

// WildcardProjection is an include/exclude marker for a wildcard-indexed
// sub-path.
// +kubebuilder:validation:Enum=0;1
type WildcardProjection int32

const (
	Exclude WildcardProjection = 0
	Include WildcardProjection = 1
)

// Options holds the optional, per-index creation options. Absent fields take
// the documented MongoDB server defaults; see the equivalence rules in
// internal/domain for how absence folds against explicit defaults.
type Options struct {
	// +optional
	Bits *uint32 `json:"bits,omitempty"`
	// +optional
	Collation *Collation `json:"collation,omitempty"`
	// +optional
	DefaultLanguage string `json:"defaultLanguage,omitempty"`
	// +optional
	ExpireAfterSeconds *uint64 `json:"expireAfterSeconds,omitempty"`
	// +optional
	Hidden *bool `json:"hidden,omitempty"`
	// +optional
	LanguageOverride string `json:"languageOverride,omitempty"`
	// +optional
	Max *float64 `json:"max,omitempty"`
	// +optional
	Min *float64 `json:"min,omitempty"`
	// Name is the server-assigned or user-requested index name. Ignored by
	// the equivalence comparator.
	// +optional
	Name string `json:"name,omitempty"`
	// PartialFilterExpression is a free-form field->value mapping.
	// +optional
	PartialFilterExpression map[string]apiextensionsv1.JSON `json:"partialFilterExpression,omitempty"`
	// +optional
	Sparse *bool `json:"sparse,omitempty"`
	// +optional
	SphereIndexVersion *uint32 `json:"sphereIndexVersion,omitempty"`
	// +optional
	TextIndexVersion *uint32 `json:"textIndexVersion,omitempty"`
	// +optional
	Unique *bool `json:"unique,omitempty"`
	// Weights maps text-indexed field names to their search score weight.
	// +optional
	Weights map[string]uint32 `json:"weights,omitempty"`
	// WildcardProjection maps wildcard sub-paths to include/exclude.
	// +optional
	WildcardProjection map[string]WildcardProjection `json:"wildcardProjection,omitempty"`
}

// CollationAlternate controls whether whitespace/punctuation are considered
// base characters for comparison purposes.
// +kubebuilder:validation:Enum=non-ignorable;shifted
type CollationAlternate string

const (
	NonIgnorable CollationAlternate = "non-ignorable"
	Shifted      CollationAlternate = "shifted"
)

// CollationCaseFirst controls whether upper or lower case sorts first.
// +kubebuilder:validation:Enum=upper;lower;off
type CollationCaseFirst string

const (
	Upper CollationCaseFirst = "upper"
	Lower CollationCaseFirst = "lower"
	Off   CollationCaseFirst = "off"
)

// CollationMaxVariable controls which characters are considered variable for
// the purposes of the alternate setting.
// +kubebuilder:validation:Enum=punct;space
type CollationMaxVariable string

const (
	Punct CollationMaxVariable = "punct"
	Space CollationMaxVariable = "space"
)

// CollationStrength is the comparison level used for string collation.
// +kubebuilder:validation:Enum=1;2;3;4;5
type CollationStrength int32

const (
	Primary    CollationStrength = 1
	Secondary  CollationStrength = 2
	Tertiary   CollationStrength = 3
	Quaternary CollationStrength = 4
	Identical  CollationStrength = 5
)

// Collation specifies language-specific string comparison rules.
type Collation struct {
	// Locale is the ICU locale identifier. Required.
	Locale string `json:"locale"`

	// +optional
	// +kubebuilder:default=non-ignorable
	Alternate CollationAlternate `json:"alternate,omitempty"`
	// +optional
	Backwards bool `json:"backwards,omitempty"`
	// +optional
	// +kubebuilder:default=off
	CaseFirst CollationCaseFirst `json:"caseFirst,omitempty"`
	// +optional
	CaseLevel bool `json:"caseLevel,omitempty"`
	// +optional
	// +kubebuilder:default=punct
	MaxVariable CollationMaxVariable `json:"maxVariable,omitempty"`
	// +optional
	Normalization bool `json:"normalization,omitempty"`
	// +optional
	NumericOrdering bool `json:"numericOrdering,omitempty"`
	// +optional
	// +kubebuilder:default=3
	Strength CollationStrength `json:"strength,omitempty"`
}

// Granularity is the bucketing granularity hint for a time-series collection.
// +kubebuilder:validation:Enum=seconds;minutes;hours
type Granularity string

const (
	Seconds Granularity = "seconds"
	Minutes Granularity = "minutes"
	Hours   Granularity = "hours"
)

// TimeSeries configures a collection as a time-series collection.
type TimeSeries struct {
	// TimeField is the document field holding the time value. Required.
	TimeField string `json:"timeField"`

	// +optional
	MetaField string `json:"metaField,omitempty"`
	// +optional
	Granularity *Granularity `json:"granularity,omitempty"`
	// +optional
	BucketMaxSpanSeconds *uint64 `json:"bucketMaxSpanSeconds,omitempty"`
	// +optional
	BucketRoundingSeconds *uint64 `json:"bucketRoundingSeconds,omitempty"`
}

// Health reports the coarse health of the last reconcile outcome.
type Health struct {
	// Status is "Healthy" or "Unhealthy".
	// +optional
	Status string `json:"status,omitempty"`
}

const (
	HealthHealthy   = "Healthy"
	HealthUnhealthy = "Unhealthy"

	PhaseReady = "Ready"
	PhaseError = "Error"
)

// MongoCollectionStatus is the last reconcile outcome, managed exclusively by
// this controller via a dedicated field manager.
type MongoCollectionStatus struct {
	// Phase is "Ready" or "Error".
	// +optional
	Phase string `json:"phase,omitempty"`

	// Health mirrors Phase as a coarse health signal for the printer column.
	// +optional
	Health Health `json:"health,omitzero"`

	// Message carries the last error, or is empty on success.
	// +optional
	Message string `json:"message,omitempty"`

	// LastTransitionTime is when Phase last changed.
	// +optional
	LastTransitionTime *metav1.Time `json:"lastTransitionTime,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=mc,categories=controllers
// +kubebuilder:printcolumn:name="Health",type=string,JSONPath=`.status.health.status`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// MongoCollection is the Schema for the mongocollections API.
type MongoCollection struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is a standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitzero"`

	// spec defines the desired state of the collection and its indexes
	// +required
	Spec MongoCollectionSpec `json:"spec"`

	// status defines the observed state from the last reconcile
	// +optional
	Status MongoCollectionStatus `json:"status,omitzero"`
}

// +kubebuilder:object:root=true

// MongoCollectionList contains a list of MongoCollection.
type MongoCollectionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitzero"`
	Items           []MongoCollection `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MongoCollection{}, &MongoCollectionList{})
}
