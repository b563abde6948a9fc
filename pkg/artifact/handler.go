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
	"log/slog"
	"path/filepath"

	"github.com/modelver/modelver/pkg/errors"
	"github.com/modelver/modelver/pkg/store"
	"github.com/modelver/modelver/pkg/version"
)

// Handler binds artifact persistence to one version of a store: artifacts
// are saved under <store root>/<version>/<group>/<subgroup>/ and indexed in
// the version's manifest.
type Handler struct {
	store   *store.Store
	version version.Version
	dir     string

	// Data is the standard data group for this version.
	Data *Group
}

// NewHandler creates a Handler for a version already present in the store.
func NewHandler(s *store.Store, v version.Version) (*Handler, error) {
	history, err := s.History()
	if err != nil {
		return nil, err
	}

	found := false
	for _, existing := range history {
		if existing.Equals(v) {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"version not present in store", store.ErrNoVersions,
			map[string]any{"version": v.String(), "store": s.Root()})
	}

	return &Handler{
		store:   s,
		version: v,
		dir:     s.Path(v),
		Data:    NewDataGroup(),
	}, nil
}

// Version returns the bound version.
func (h *Handler) Version() version.Version {
	return h.version
}

// Dir returns the bound version directory.
func (h *Handler) Dir() string {
	return h.dir
}

// SaveCSV persists tabular records as a CSV artifact in the given data
// subgroup and records it in the version manifest.
func (h *Handler) SaveCSV(subgroup, label string, records [][]string) (*CSVArtifact, error) {
	sg, err := h.Data.Sub(subgroup)
	if err != nil {
		return nil, err
	}

	a, err := NewCSV(label, h.subDir(h.Data.Label, subgroup), records)
	if err != nil {
		return nil, err
	}
	if err := a.Save(); err != nil {
		return nil, err
	}

	sg.Add(a)
	if err := h.record(a, h.Data.Label, subgroup); err != nil {
		return nil, err
	}

	slog.Debug("csv artifact saved",
		"version", h.version.String(),
		"subgroup", subgroup,
		"label", label,
		"rows", len(records))
	return a, nil
}

// SaveBinary gob-encodes content as a binary artifact in the given data
// subgroup and records it in the version manifest.
func (h *Handler) SaveBinary(subgroup, label string, content any) (*BinaryArtifact, error) {
	sg, err := h.Data.Sub(subgroup)
	if err != nil {
		return nil, err
	}

	a, err := NewBinary(label, h.subDir(h.Data.Label, subgroup), content)
	if err != nil {
		return nil, err
	}
	if err := a.Save(); err != nil {
		return nil, err
	}

	sg.Add(a)
	if err := h.record(a, h.Data.Label, subgroup); err != nil {
		return nil, err
	}

	slog.Debug("binary artifact saved",
		"version", h.version.String(),
		"subgroup", subgroup,
		"label", label)
	return a, nil
}

// LoadCSV reads a CSV artifact back from the given data subgroup.
func (h *Handler) LoadCSV(subgroup, label string) (*CSVArtifact, error) {
	return LoadCSV(label, h.subDir(h.Data.Label, subgroup))
}

// LoadBinary reads a binary artifact from the given data subgroup into out.
func (h *Handler) LoadBinary(subgroup, label string, out any) error {
	return LoadBinary(label, h.subDir(h.Data.Label, subgroup), out)
}

// Manifest returns the version's artifact manifest.
func (h *Handler) Manifest() (*Manifest, error) {
	return LoadManifest(h.dir)
}

func (h *Handler) subDir(group, subgroup string) string {
	return filepath.Join(h.dir, group, subgroup)
}

// record appends the artifact to the persisted manifest.
func (h *Handler) record(a Artifact, group, subgroup string) error {
	m, err := LoadManifest(h.dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to load manifest", err)
	}
	m.Record(a, group, subgroup, h.dir)
	if err := m.Write(h.dir); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write manifest", err)
	}
	return nil
}
