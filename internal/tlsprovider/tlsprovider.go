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

// Package tlsprovider installs the process-wide TLS defaults once, the
// Go-native stand-in for the one-shot rustls crypto provider install this
// controller's build is otherwise modeled on. Go's crypto/tls needs no
// provider install, but the program's entrypoint still expects to call this
// exactly once, and a second call is a programming error, not a runtime
// condition.
package tlsprovider

import (
	"crypto/tls"
	"sync"
)

var (
	once       sync.Once
	minVersion = uint16(tls.VersionTLS12)
)

// Install marks the process-wide TLS defaults as set. It must be called
// exactly once, before any client is constructed; a second call panics.
func Install() {
	installed := false
	once.Do(func() {
		installed = true
	})
	if !installed {
		panic("tlsprovider: Install called more than once")
	}
}

// MinVersion returns the minimum TLS version Install enforces, for callers
// building their own tls.Config (e.g. the mongo client's dial options).
func MinVersion() uint16 {
	return minVersion
}
