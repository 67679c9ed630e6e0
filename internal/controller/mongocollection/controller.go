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

// Package mongocollection implements the MongoCollection reconciler: it
// ensures the target collection exists, reconciles its indexes against the
// spec, and patches status with the outcome.
package mongocollection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

const (
	backOff  = 5 * time.Second
	interval = 60 * time.Second
)

// Reconciler drives MongoCollection resources to match their declared
// collection and index state. It installs no finalizer and performs no
// deletion handling: orphaned collections are left behind deliberately, not
// by oversight.
type Reconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Database *mongo.Database
	Recorder record.EventRecorder
}

// +kubebuilder:rbac:groups=pincette.net,resources=mongocollections,verbs=get;list;watch
// +kubebuilder:rbac:groups=pincette.net,resources=mongocollections/status,verbs=get;update;patch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

// Reconcile is part of the main Kubernetes reconciliation loop. See
// https://pkg.go.dev/sigs.k8s.io/controller-runtime@v0.22.4/pkg/reconcile
func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	cr := &v1.MongoCollection{}
	if err := r.Get(ctx, req.NamespacedName, cr); err != nil {
		if err := client.IgnoreNotFound(err); err != nil {
			return ctrl.Result{}, &KubeError{Err: err}
		}
		return ctrl.Result{}, nil
	}

	// Re-entry throttle: damps tight failure loops. The sleep holds this
	// manager's single reconcile worker, so other CRs in the same scope wait
	// behind it.
	if isNotReady(cr) {
		time.Sleep(backOff)
	}

	result, err := r.reconcileAction(ctx, cr)
	if err != nil {
		reconcilesTotal.WithLabelValues("error").Inc()

		// A failed status patch is propagated without another patch attempt.
		var statusErr *StatusPatchError
		if !errors.As(err, &statusErr) {
			if patchErr := r.patchStatus(ctx, cr, setError(err.Error())); patchErr != nil {
				logf.FromContext(ctx).Error(patchErr, "failed to patch status to Error")
			}
		}
		r.publishEvent(cr, err)

		return result, err
	}

	reconcilesTotal.WithLabelValues("success").Inc()
	return result, nil
}

func (r *Reconciler) reconcileAction(ctx context.Context, cr *v1.MongoCollection) (ctrl.Result, error) {
	logger := logf.FromContext(ctx)

	if invalid := invalidKeys(cr.Spec.Indexes); len(invalid) > 0 {
		return ctrl.Result{RequeueAfter: backOff}, &InvalidKeysError{Fields: invalid}
	}

	name := collectionName(cr)

	exists, err := r.collectionExists(ctx, name)
	if err != nil {
		return ctrl.Result{RequeueAfter: backOff}, &DatabaseError{Err: err}
	}
	if !exists {
		if err := createCollection(ctx, r.Database, name, cr.Spec); err != nil {
			return ctrl.Result{RequeueAfter: backOff}, &DatabaseError{Err: err}
		}
	}

	collection := r.Database.Collection(name)
	changed, err := r.reconcileIndexes(ctx, collection, cr.Spec.Indexes)
	if err != nil {
		return ctrl.Result{RequeueAfter: backOff}, &DatabaseError{Err: err}
	}

	// Patch status only when something actually changed, to avoid spurious
	// writes on every steady-state poll.
	if changed || cr.Status.Phase == "" || isNotReady(cr) {
		if err := r.patchStatus(ctx, cr, setReady()); err != nil {
			return ctrl.Result{RequeueAfter: backOff}, err
		}
	}

	logger.Info(fmt.Sprintf("Reconciled %s/%s", cr.Namespace, cr.Name))
	return ctrl.Result{RequeueAfter: interval}, nil
}

func (r *Reconciler) collectionExists(ctx context.Context, name string) (bool, error) {
	names, err := r.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func isNotReady(cr *v1.MongoCollection) bool {
	return cr.Status.Phase != "" && cr.Status.Phase != v1.PhaseReady
}

func collectionName(cr *v1.MongoCollection) string {
	if cr.Spec.Name != "" {
		return cr.Spec.Name
	}
	return cr.Name
}

func invalidKeys(indexes []v1.Index) []string {
	var fields []string
	for _, idx := range indexes {
		for _, k := range idx.Keys {
			if k.Direction != nil && k.IndexType != nil {
				fields = append(fields, k.Field)
			}
		}
	}
	return fields
}

// SetupWithManager sets up the controller with the Manager. Concurrency is
// fixed at 1: raising it would permit interleaved drop/create against the
// same collection.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1.MongoCollection{}).
		WithEventFilter(predicate.GenerationChangedPredicate{}).
		WithOptions(controller.Options{MaxConcurrentReconciles: 1}).
		Named("mongocollection").
		Complete(r)
}
