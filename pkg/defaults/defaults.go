// Copyright (c) 2026, the modelver authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package defaults provides centralized configuration constants shared
// across modelver components. Centralizing these values keeps the CLI,
// the API server, and the store in agreement and makes tuning easier.
package defaults

import (
	"os"
	"time"
)

// Store defaults.
const (
	// InitialVersion is the version Init seeds an empty store with.
	InitialVersion = "0.0.0-dev.0"

	// DirMode is the permission mode for created directories.
	DirMode os.FileMode = 0o755

	// FileMode is the permission mode for created files.
	FileMode os.FileMode = 0o644

	// ModelsDir is the store root used when none is configured.
	ModelsDir = "models"
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout limits reading the full request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout limits writing the full response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout closes idle keep-alive connections.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown on SIGTERM.
	ServerShutdownTimeout = 30 * time.Second
)
