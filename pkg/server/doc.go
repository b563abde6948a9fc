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

// Package server exposes a version store over HTTP.
//
// The API serves the store's history (GET /v1/versions), its latest
// version (GET /v1/versions/latest), and accepts new versions
// (POST /v1/versions) either as an explicit version string or as a bump
// kind applied to the latest version.
//
// API routes are wrapped in a middleware chain providing Prometheus
// metrics, API version negotiation, request IDs, panic recovery, rate
// limiting, and request logging. System endpoints (/health, /ready,
// /metrics) bypass rate limiting so probes and scrapes are never shed.
//
// Configuration comes from the environment: PORT, MODELS_DIR, and
// SHUTDOWN_TIMEOUT_SECONDS, with sensible defaults for local use.
package server
