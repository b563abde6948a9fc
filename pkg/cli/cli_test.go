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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with the given args against a store dir,
// capturing the serialized output from a temp file.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "out.json")

	// flags must precede positional arguments
	full := []string{"modelver", args[0], "--dir", dir, "--format", "json", "--output", out}
	full = append(full, args[1:]...)

	err := Root().Run(context.Background(), full)
	if err != nil {
		return "", err
	}

	data, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("failed to read output file: %v", readErr)
	}
	return string(data), nil
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "0.0.0-dev.0") {
		t.Errorf("expected initial version in output, got %s", out)
	}

	// second init hits the duplicate check
	if _, err := run(t, dir, "init"); err == nil {
		t.Error("expected error on repeated init")
	}
}

func TestAddCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add", "1.2.3")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var entry struct {
		Version string `json:"version"`
		Path    string `json:"path"`
	}
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if entry.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", entry.Version)
	}

	if _, err := os.Stat(entry.Path); err != nil {
		t.Errorf("expected version directory at %s: %v", entry.Path, err)
	}
}

func TestAddCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing argument", args: []string{"add"}},
		{name: "invalid version", args: []string{"add", "1.2"}},
		{name: "non numeric", args: []string{"add", "a.b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, t.TempDir(), tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAddDuplicateFails(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := run(t, dir, "add", "1.0.0"); err == nil {
		t.Error("expected error on duplicate add")
	}
}

func TestBumpCommand(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default patch", args: []string{"bump"}, expected: "1.0.1"},
		{name: "minor", args: []string{"bump", "minor"}, expected: "1.1.0"},
		{name: "major", args: []string{"bump", "major"}, expected: "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, dir, tt.args...)
			if err != nil {
				t.Fatalf("bump failed: %v", err)
			}
			if !strings.Contains(out, tt.expected) {
				t.Errorf("expected version %s in output, got %s", tt.expected, out)
			}
		})
	}
}

func TestBumpInvalidKind(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := run(t, dir, "bump", "mega"); err == nil {
		t.Error("expected error for unknown bump kind")
	}
}

func TestNextCommandDoesNotRecord(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	out, err := run(t, dir, "next", "minor")
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if !strings.Contains(out, "1.1.0") {
		t.Errorf("expected 1.1.0 in output, got %s", out)
	}

	// latest is unchanged
	out, err = run(t, dir, "latest")
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if !strings.Contains(out, "1.0.0") {
		t.Errorf("expected latest to remain 1.0.0, got %s", out)
	}
}

func TestLatestEmptyStore(t *testing.T) {
	if _, err := run(t, t.TempDir(), "latest"); err == nil {
		t.Error("expected error for empty store")
	}
}

func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()

	for _, v := range []string{"0.1.0", "1.0.0", "0.2.0"} {
		if _, err := run(t, dir, "add", v); err != nil {
			t.Fatalf("add %s failed: %v", v, err)
		}
	}

	out, err := run(t, dir, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}

	var entries []struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	expected := []string{"0.1.0", "0.2.0", "1.0.0"}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for i, e := range entries {
		if e.Version != expected[i] {
			t.Errorf("expected version %s at index %d, got %s", expected[i], i, e.Version)
		}
	}
}

func TestHistoryStrict(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "checkpoints"), 0o755); err != nil {
		t.Fatalf("failed to create stray dir: %v", err)
	}

	// default mode skips the stray entry
	if _, err := run(t, dir, "history"); err != nil {
		t.Errorf("expected history to tolerate stray entries, got %v", err)
	}

	// strict mode rejects it
	if _, err := run(t, dir, "history", "--strict"); err == nil {
		t.Error("expected strict history to fail on stray entries")
	}
}

func TestUnknownFormat(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "add", "1.0.0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	err := Root().Run(context.Background(),
		[]string{"modelver", "latest", "--dir", dir, "--format", "xml"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
