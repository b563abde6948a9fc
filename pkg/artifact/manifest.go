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

package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/modelver/modelver/pkg/defaults"
	"github.com/modelver/modelver/pkg/header"
)

// ManifestFile is the name of the per-version artifact manifest.
const ManifestFile = "artifacts.yaml"

// ManifestEntry records one saved artifact in a version's manifest.
type ManifestEntry struct {
	ID       uuid.UUID `yaml:"id" json:"id"`
	Label    string    `yaml:"label" json:"label"`
	Kind     Kind      `yaml:"kind" json:"kind"`
	Group    string    `yaml:"group" json:"group"`
	SubGroup string    `yaml:"subgroup" json:"subgroup"`
	File     string    `yaml:"file" json:"file"`
	Created  time.Time `yaml:"created" json:"created"`
}

// Manifest is the index of artifacts saved under one version directory,
// persisted as artifacts.yaml next to the artifact files.
type Manifest struct {
	header.Header `yaml:",inline"`

	Entries []ManifestEntry `yaml:"artifacts" json:"artifacts"`
}

// LoadManifest reads the manifest from a version directory. A missing
// manifest is not an error: it returns an empty Manifest.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// Write persists the manifest to a version directory, stamping the schema
// header if it has not been set yet.
func (m *Manifest) Write(dir string) error {
	if m.Kind == "" {
		m.Init(header.KindManifest, "")
	}

	content, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, content, defaults.FileMode); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// Record appends an entry for a saved artifact, assigning it a fresh ID.
// The file path is stored relative to dir when possible.
func (m *Manifest) Record(a Artifact, group, subgroup, dir string) ManifestEntry {
	file := a.Path()
	if rel, err := filepath.Rel(dir, file); err == nil {
		file = rel
	}

	entry := ManifestEntry{
		ID:       uuid.New(),
		Label:    a.Label(),
		Kind:     a.Kind(),
		Group:    group,
		SubGroup: subgroup,
		File:     file,
		Created:  time.Now().UTC(),
	}
	m.Entries = append(m.Entries, entry)
	return entry
}

// Find returns the first entry with the given label, or nil.
func (m *Manifest) Find(label string) *ManifestEntry {
	for i := range m.Entries {
		if m.Entries[i].Label == label {
			return &m.Entries[i]
		}
	}
	return nil
}
