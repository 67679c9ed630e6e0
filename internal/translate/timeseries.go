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
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo/options"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// TimeSeriesToModel translates the resource's time-series configuration into
// the driver's TimeSeriesOptions.
func TimeSeriesToModel(t *v1.TimeSeries) *options.TimeSeriesOptions {
	if t == nil {
		return nil
	}
	opts := options.TimeSeries().SetTimeField(t.TimeField)
	if t.MetaField != "" {
		opts.SetMetaField(t.MetaField)
	}
	if t.Granularity != nil {
		opts.SetGranularity(string(*t.Granularity))
	}
	if t.BucketMaxSpanSeconds != nil {
		opts.SetBucketMaxSpan(time.Duration(*t.BucketMaxSpanSeconds) * time.Second)
	}
	if t.BucketRoundingSeconds != nil {
		opts.SetBucketRounding(time.Duration(*t.BucketRoundingSeconds) * time.Second)
	}
	return opts
}
