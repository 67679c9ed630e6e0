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

// Package mongoclient builds the shared database handle every namespace
// manager's reconciler reads and writes through: one client built once at
// startup from resolved configuration, not one per reconcile.
package mongoclient

import (
	"context"
	"crypto/tls"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mongocollections.pincette.net/mongo-collections-operator/internal/config"
)

// Connect dials the configured MongoDB deployment and returns the logical
// database the operator manages collections in.
func Connect(ctx context.Context, cfg config.Config, minTLSVersion uint16) (*mongo.Database, func(context.Context) error, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URL).
		SetTLSConfig(&tls.Config{MinVersion: minTLSVersion})

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cfg.URL, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping %s: %w", cfg.URL, err)
	}

	return client.Database(cfg.Database), client.Disconnect, nil
}
