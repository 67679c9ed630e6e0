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
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Ambient metrics, not part of the reconciliation semantics this controller
// implements: three counters observing reconcile outcomes and index churn,
// registered with the manager's default metrics registry.
var (
	reconcilesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mongocollections_reconciles_total",
		Help: "Total number of reconciles, by outcome.",
	}, []string{"result"})

	indexesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mongocollections_indexes_created_total",
		Help: "Total number of indexes created.",
	})

	indexesDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mongocollections_indexes_dropped_total",
		Help: "Total number of indexes dropped.",
	})
)

func init() {
	metrics.Registry.MustRegister(reconcilesTotal, indexesCreatedTotal, indexesDroppedTotal)
}
