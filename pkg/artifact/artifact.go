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
	"encoding/csv"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modelver/modelver/pkg/defaults"
)

// Error types for artifact operations.
var (
	// ErrArtifactNotFound indicates the artifact file does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrEmptyLabel indicates an artifact without a label.
	ErrEmptyLabel = errors.New("artifact label is required")
)

// Kind classifies the payload an artifact carries.
type Kind string

const (
	// KindCSV is a tabular payload stored as a CSV file.
	KindCSV Kind = "csv_table"
	// KindBinary is an opaque payload stored gob-encoded.
	KindBinary Kind = "model_binary"
)

var titleCaser = cases.Title(language.English)

// DisplayName returns the kind formatted for table output,
// e.g. "Csv Table" for csv_table.
func (k Kind) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(k), "_", " "))
}

// Artifact is a labeled payload persisted inside a version directory.
type Artifact interface {
	// Label is the artifact name, unique within its subgroup.
	Label() string
	// Kind classifies the payload.
	Kind() Kind
	// Path is the file the artifact persists to.
	Path() string
	// Save writes the payload, creating parent directories as needed.
	Save() error
}

// CSVArtifact is a tabular artifact stored as a CSV file named
// <label>.csv under its directory.
type CSVArtifact struct {
	label   string
	dir     string
	Records [][]string
}

// NewCSV creates a CSV artifact with the given label and records, bound to
// a directory.
func NewCSV(label, dir string, records [][]string) (*CSVArtifact, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	return &CSVArtifact{label: label, dir: dir, Records: records}, nil
}

func (a *CSVArtifact) Label() string { return a.label }
func (a *CSVArtifact) Kind() Kind    { return KindCSV }

// Path returns the CSV file path.
func (a *CSVArtifact) Path() string {
	return filepath.Join(a.dir, a.label+".csv")
}

// Save writes the records as CSV, creating the directory chain if needed.
func (a *CSVArtifact) Save() error {
	if err := os.MkdirAll(a.dir, defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create artifact directory %q: %w", a.dir, err)
	}

	file, err := os.Create(a.Path())
	if err != nil {
		return fmt.Errorf("failed to create artifact file %q: %w", a.Path(), err)
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(a.Records); err != nil {
		file.Close()
		return fmt.Errorf("failed to write csv artifact %q: %w", a.label, err)
	}
	return file.Close()
}

// LoadCSV reads a previously saved CSV artifact from the given directory.
// Returns ErrArtifactNotFound if the file does not exist.
func LoadCSV(label, dir string) (*CSVArtifact, error) {
	a := &CSVArtifact{label: label, dir: dir}

	file, err := os.Open(a.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, a.Path())
		}
		return nil, fmt.Errorf("failed to open artifact file %q: %w", a.Path(), err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv artifact %q: %w", label, err)
	}

	a.Records = records
	return a, nil
}

// BinaryArtifact is an opaque artifact stored gob-encoded as a file named
// <label>.bin under its directory. The content can be any gob-encodable
// value; callers register interface implementations with gob themselves.
type BinaryArtifact struct {
	label   string
	dir     string
	Content any
}

// NewBinary creates a binary artifact with the given label and content,
// bound to a directory.
func NewBinary(label, dir string, content any) (*BinaryArtifact, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	return &BinaryArtifact{label: label, dir: dir, Content: content}, nil
}

func (a *BinaryArtifact) Label() string { return a.label }
func (a *BinaryArtifact) Kind() Kind    { return KindBinary }

// Path returns the binary file path.
func (a *BinaryArtifact) Path() string {
	return filepath.Join(a.dir, a.label+".bin")
}

// Save gob-encodes the content, creating the directory chain if needed.
func (a *BinaryArtifact) Save() error {
	if err := os.MkdirAll(a.dir, defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create artifact directory %q: %w", a.dir, err)
	}

	file, err := os.Create(a.Path())
	if err != nil {
		return fmt.Errorf("failed to create artifact file %q: %w", a.Path(), err)
	}

	if err := gob.NewEncoder(file).Encode(a.Content); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode binary artifact %q: %w", a.label, err)
	}
	return file.Close()
}

// LoadBinary reads a previously saved binary artifact into out, which must
// be a pointer to the same type that was saved.
// Returns ErrArtifactNotFound if the file does not exist.
func LoadBinary(label, dir string, out any) error {
	path := filepath.Join(dir, label+".bin")

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return fmt.Errorf("failed to open artifact file %q: %w", path, err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(out); err != nil {
		return fmt.Errorf("failed to decode binary artifact %q: %w", label, err)
	}
	return nil
}
