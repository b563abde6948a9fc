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

// Package artifact persists model artifacts alongside a versioned model
// directory.
//
// Artifacts come in two kinds: CSV tables for tabular data and gob-encoded
// binaries for opaque payloads such as trained models. Artifacts are
// organized into groups and subgroups; the standard "data" group carries
// the raw, interim, transformed, and predicted stages of a pipeline run.
//
// A Handler binds artifact persistence to one version of a store. Saving
// an artifact through a Handler writes the payload under
//
//	<store root>/<version>/data/<subgroup>/<label>.<ext>
//
// and appends an entry to the version's artifacts.yaml manifest so the
// contents of a version directory stay discoverable without walking it.
package artifact
