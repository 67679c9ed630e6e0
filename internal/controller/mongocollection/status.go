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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// fieldManager is the dedicated field manager this controller uses to own
// the .status subresource; no other writer may touch it.
const fieldManager = "mongo-collections"

// setReady computes the next status on a successful reconcile.
func setReady() v1.MongoCollectionStatus {
	now := metav1.Now()
	return v1.MongoCollectionStatus{
		Phase:              v1.PhaseReady,
		Health:             v1.Health{Status: v1.HealthHealthy},
		LastTransitionTime: &now,
	}
}

// setError computes the next status on a failed reconcile.
func setError(message string) v1.MongoCollectionStatus {
	now := metav1.Now()
	return v1.MongoCollectionStatus{
		Phase:              v1.PhaseError,
		Health:             v1.Health{Status: v1.HealthUnhealthy},
		Message:            message,
		LastTransitionTime: &now,
	}
}

// patchStatus submits a server-side merge patch of .status, claiming
// ownership via fieldManager rather than calling Status().Update, matching
// the merge-patch semantics this resource's status surface requires.
func (r *Reconciler) patchStatus(ctx context.Context, cr *v1.MongoCollection, status v1.MongoCollectionStatus) error {
	if cr.Status.Phase == status.Phase && cr.Status.LastTransitionTime != nil {
		status.LastTransitionTime = cr.Status.LastTransitionTime
	}

	raw, err := json.Marshal(status)
	if err != nil {
		return &StatusPatchError{Name: cr.Name}
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &StatusPatchError{Name: cr.Name}
	}
	if status.Message == "" {
		// An explicit null removes a previous error message under merge-patch semantics.
		fields["message"] = nil
	}

	payload, err := json.Marshal(map[string]any{"status": fields})
	if err != nil {
		return &StatusPatchError{Name: cr.Name}
	}

	if err := r.Status().Patch(ctx, cr, client.RawPatch(types.MergePatchType, payload), client.FieldOwner(fieldManager)); err != nil {
		return &StatusPatchError{Name: cr.Name}
	}

	return nil
}
