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
	corev1 "k8s.io/api/core/v1"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
)

// publishEvent emits a Warning event on cr keyed by its ObjectReference,
// reason "Error", carrying the failure message as the event note.
func (r *Reconciler) publishEvent(cr *v1.MongoCollection, err error) {
	r.Recorder.Event(cr, corev1.EventTypeWarning, "Error", err.Error())
}
