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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	logzap "sigs.k8s.io/controller-runtime/pkg/log/zap"

	v1 "mongocollections.pincette.net/mongo-collections-operator/api/v1"
	"mongocollections.pincette.net/mongo-collections-operator/internal/config"
	"mongocollections.pincette.net/mongo-collections-operator/internal/controller/mongocollection"
	"mongocollections.pincette.net/mongo-collections-operator/internal/mongoclient"
	"mongocollections.pincette.net/mongo-collections-operator/internal/namespaces"
	"mongocollections.pincette.net/mongo-collections-operator/internal/tlsprovider"
)

// version is reported once at startup, the Go stand-in for the Rust
// original's compile-time VERSION constant.
const version = "1.0.0"

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1.AddToScheme(scheme))
}

func main() {
	var metricsAddr string
	var probeAddr string
	opts := logzap.Options{Development: false}
	opts.BindFlags(flag.CommandLine)
	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "The address the metric endpoint binds to.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.Parse()

	ctrl.SetLogger(logzap.New(logzap.UseFlagOptions(&opts)))

	tlsprovider.Install()

	setupLog.Info(fmt.Sprintf("Version: %s", version))

	cfg, err := config.Load()
	if err != nil {
		setupLog.Error(err, "unable to load configuration")
		os.Exit(1)
	}

	ctx := ctrl.SetupSignalHandler()

	database, disconnect, err := mongoclient.Connect(ctx, cfg, tlsprovider.MinVersion())
	if err != nil {
		setupLog.Error(err, "unable to connect to database")
		os.Exit(1)
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			setupLog.Error(err, "error disconnecting from database")
		}
	}()

	restConfig := ctrl.GetConfigOrDie()

	scopes := namespaces.Watched()
	if scopes == nil {
		setupLog.Info("Watching at cluster scope")
		scopes = []string{""}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for i, namespace := range scopes {
		namespace := namespace
		bindEndpoints := i == 0

		group.Go(func() error {
			return runManager(groupCtx, restConfig, database, namespace, metricsAddr, probeAddr, bindEndpoints)
		})
	}

	if err := group.Wait(); err != nil {
		setupLog.Error(err, "manager exited with an error")
		os.Exit(1)
	}
}

// runManager builds and runs one controller-runtime Manager scoped to
// namespace (cluster-wide when namespace is ""). Only the first manager in
// the fan-out binds the metrics and health endpoints; the rest disable them
// to avoid binding the same port twice in one process.
func runManager(ctx context.Context, restConfig *rest.Config, database *mongo.Database, namespace, metricsAddr, probeAddr string, bindEndpoints bool) error {
	options := ctrl.Options{
		Scheme:                 scheme,
		HealthProbeBindAddress: "0",
		Metrics:                metricsserver.Options{BindAddress: "0"},
	}
	if bindEndpoints {
		options.HealthProbeBindAddress = probeAddr
		options.Metrics = metricsserver.Options{BindAddress: metricsAddr}
	}
	if namespace != "" {
		options.Cache = cache.Options{DefaultNamespaces: map[string]cache.Config{namespace: {}}}
	}

	mgr, err := ctrl.NewManager(restConfig, options)
	if err != nil {
		return fmt.Errorf("unable to start manager for namespace %q: %w", namespace, err)
	}

	reconciler := &mongocollection.Reconciler{
		Client:   mgr.GetClient(),
		Scheme:   mgr.GetScheme(),
		Database: database,
		Recorder: mgr.GetEventRecorderFor("mongo-collections"),
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to create controller for namespace %q: %w", namespace, err)
	}

	if bindEndpoints {
		if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
			return fmt.Errorf("unable to set up health check: %w", err)
		}
		if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
			return fmt.Errorf("unable to set up ready check: %w", err)
		}
	}

	setupLog.Info(fmt.Sprintf("starting manager for namespace %q", namespace))
	return mgr.Start(ctx)
}
