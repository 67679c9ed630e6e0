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
	"fmt"
	"strings"
)

// InvalidKeysError is returned when a Key has both direction and indexType
// set. Terminal per-reconcile: neither the collection nor its indexes are
// touched.
type InvalidKeysError struct {
	Fields []string
}

func (e *InvalidKeysError) Error() string {
	return fmt.Sprintf("the keys %s have both the fields direction and indexType set", strings.Join(e.Fields, ", "))
}

// DatabaseError wraps any failure returned by the database driver.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string { return fmt.Sprintf("MongoDB error: %s", e.Err) }
func (e *DatabaseError) Unwrap() error { return e.Err }

// KubeError wraps any failure returned by the Kubernetes API.
type KubeError struct {
	Err error
}

func (e *KubeError) Error() string { return fmt.Sprintf("kube API error: %s", e.Err) }
func (e *KubeError) Unwrap() error { return e.Err }

// StatusPatchError is returned when patching .status fails. It is logged and
// propagated; no further status patch is attempted for the same reconcile.
type StatusPatchError struct {
	Name string
}

func (e *StatusPatchError) Error() string {
	return fmt.Sprintf("the status of %s could not be updated", e.Name)
}
