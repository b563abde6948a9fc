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

// Package header provides common header types for persisted resources.
//
// Every file modelver writes to disk carries a Header identifying its kind
// and schema version, so readers can reject files they do not understand
// and schemas can evolve without breaking old data.
//
// Example serialized form:
//
//	kind: Manifest
//	apiVersion: modelver/v1
//	metadata:
//	  timestamp: "2026-08-28T10:30:00Z"
//	  version: 1.2.0
package header
