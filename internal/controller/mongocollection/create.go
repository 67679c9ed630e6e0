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
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
	"mongocollections.pincette.net/mongo-collections-operator/internal/translate"
)

// createCollection builds the target collection with only the options the
// user set; absent fields fall through to the driver default. Mirrors the
// update_if_some builder chain of the resource this is modeled on.
func createCollection(ctx context.Context, database *mongo.Database, name string, spec v1.MongoCollectionSpec) error {
	logger := log.FromContext(ctx)
	logger.Info(fmt.Sprintf("Create collection %s", name))

	opts := options.CreateCollection()

	capped := spec.Capped != nil && *spec.Capped
	opts.SetCapped(capped)

	if spec.ChangeStreamPreAndPostImages != nil {
		opts.SetChangeStreamPreAndPostImages(options.ChangeStreamPreAndPostImages{
			Enabled: *spec.ChangeStreamPreAndPostImages,
		})
	}
	if spec.Clustered != nil && *spec.Clustered {
		opts.SetClusteredIndex(options.ClusteredIndex().SetKey(bson.D{{Key: "_id", Value: 1}}).SetUnique(true))
	}
	if spec.Collation != nil {
		opts.SetCollation(translate.CollationToModel(spec.Collation))
	}
	if spec.ExpireAfterSeconds != nil {
		opts.SetExpireAfterSeconds(int64(*spec.ExpireAfterSeconds))
	}
	if spec.Max != nil {
		opts.SetMaxDocuments(int64(*spec.Max))
	}
	if spec.Size != nil {
		opts.SetSizeInBytes(int64(*spec.Size))
	}
	if spec.TimeSeries != nil {
		opts.SetTimeSeriesOptions(translate.TimeSeriesToModel(spec.TimeSeries))
	}
	if spec.Validator != nil {
		if validator, err := validatorToDocument(spec.Validator); err == nil {
			opts.SetValidator(validator)
		}
	}
	if spec.ValidationAction != "" {
		opts.SetValidationAction(spec.ValidationAction)
	}
	if spec.ValidationLevel != "" {
		opts.SetValidationLevel(spec.ValidationLevel)
	}

	return database.CreateCollection(ctx, name, opts)
}

// validatorToDocument converts the free-form validator JSON into a bson
// document. A malformed validator is rejected at the admission layer, not
// here; this mirrors the original's set_validator, which drops the option
// silently on a conversion failure rather than failing collection creation.
func validatorToDocument(v *apiextensionsv1.JSON) (bson.M, error) {
	var m bson.M
	if err := json.Unmarshal(v.Raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
