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
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"sigs.k8s.io/controller-runtime/pkg/log"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
	"mongocollections.pincette.net/mongo-collections-operator/internal/domain"
	"mongocollections.pincette.net/mongo-collections-operator/internal/translate"
)

// plan computes the drop and create sets for reconciling observed indexes
// toward desired indexes, under the equivalence rule in internal/domain.
// Drops are returned before creates: a desired index that differs only in
// its options must be re-created under the same key set, and dropping
// first frees that slot.
func plan(desired, observed []v1.Index) (drops []string, creates []v1.Index) {
	for _, o := range observed {
		if !domain.ContainsEquivalentIndex(desired, o) {
			if n := indexName(o); n != "" {
				drops = append(drops, n)
			}
		}
	}
	for _, d := range desired {
		if !domain.ContainsEquivalentIndex(observed, d) {
			creates = append(creates, d)
		}
	}
	return drops, creates
}

func indexName(idx v1.Index) string {
	if idx.Options != nil {
		return idx.Options.Name
	}
	return ""
}

// reconcileIndexes lists the indexes currently on collection, computes the
// plan against desired, applies drops then creates, and reports whether
// anything changed.
func (r *Reconciler) reconcileIndexes(ctx context.Context, collection *mongo.Collection, desired []v1.Index) (bool, error) {
	logger := log.FromContext(ctx)

	observed, err := listIndexes(ctx, collection)
	if err != nil {
		return false, err
	}

	drops, creates := plan(desired, observed)

	for _, n := range drops {
		logger.Info(fmt.Sprintf("Dropping index %s of collection %s", n, collection.Name()))
		if _, err := collection.Indexes().DropOne(ctx, n); err != nil {
			return false, err
		}
	}
	indexesDroppedTotal.Add(float64(len(drops)))

	for _, idx := range creates {
		logger.Info(fmt.Sprintf("Creating index %s for collection %s", indexName(idx), collection.Name()))
		createdName, err := collection.Indexes().CreateOne(ctx, translate.IndexToModel(idx))
		if err != nil {
			return false, err
		}
		logger.Info(fmt.Sprintf("Created index %s for collection %s", createdName, collection.Name()))
	}
	indexesCreatedTotal.Add(float64(len(creates)))

	return len(drops)+len(creates) > 0, nil
}

// listIndexes enumerates the indexes reported by the server and translates
// each into the resource model, dropping the clustered _id index.
func listIndexes(ctx context.Context, collection *mongo.Collection) ([]v1.Index, error) {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}

	var raws []bson.Raw
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}

	return translate.DecodeObservedIndexes(raws)
}
