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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelver/modelver/pkg/header"
	"github.com/modelver/modelver/pkg/store"
	"github.com/modelver/modelver/pkg/version"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	v := version.MustParse("1.2.0")
	require.NoError(t, s.Add(v))

	h, err := NewHandler(s, v)
	require.NoError(t, err)
	return h
}

func TestNewHandlerUnknownVersion(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	_, err = NewHandler(s, version.MustParse("9.9.9"))
	assert.ErrorIs(t, err, store.ErrNoVersions)
}

func TestHandlerSaveCSV(t *testing.T) {
	h := newTestHandler(t)

	records := [][]string{{"x", "y"}, {"1", "2"}}
	a, err := h.SaveCSV(SubGroupRaw, "train", records)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(h.Dir(), "data", "raw", "train.csv"), a.Path())
	_, err = os.Stat(a.Path())
	require.NoError(t, err)

	loaded, err := h.LoadCSV(SubGroupRaw, "train")
	require.NoError(t, err)
	assert.Equal(t, records, loaded.Records)
}

func TestHandlerSaveBinary(t *testing.T) {
	h := newTestHandler(t)

	in := map[string]float64{"age": 0.42}
	_, err := h.SaveBinary(SubGroupTransformed, "weights", in)
	require.NoError(t, err)

	var out map[string]float64
	require.NoError(t, h.LoadBinary(SubGroupTransformed, "weights", &out))
	assert.Equal(t, in, out)
}

func TestHandlerManifest(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.SaveCSV(SubGroupRaw, "train", [][]string{{"x"}})
	require.NoError(t, err)
	_, err = h.SaveBinary(SubGroupPredicted, "scores", []float64{0.9})
	require.NoError(t, err)

	m, err := h.Manifest()
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, header.KindManifest, m.Kind)
	assert.Equal(t, header.APIVersion, m.APIVersion)

	entry := m.Find("train")
	require.NotNil(t, entry)
	assert.Equal(t, KindCSV, entry.Kind)
	assert.Equal(t, "data", entry.Group)
	assert.Equal(t, SubGroupRaw, entry.SubGroup)
	assert.Equal(t, filepath.Join("data", "raw", "train.csv"), entry.File)
	assert.NotEqual(t, m.Entries[0].ID, m.Entries[1].ID)

	// the manifest file lives at the version directory root
	_, err = os.Stat(filepath.Join(h.Dir(), ManifestFile))
	assert.NoError(t, err)
}

func TestHandlerRejectsUnknownSubgroup(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.SaveCSV("staging", "train", nil)
	assert.Error(t, err)
}
