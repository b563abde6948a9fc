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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/modelver/modelver/pkg/serializer"
	"github.com/modelver/modelver/pkg/store"
	verpkg "github.com/modelver/modelver/pkg/version"
)

// versionEntry is the CLI output shape for one stored version.
type versionEntry struct {
	Version string `json:"version" yaml:"version"`
	Path    string `json:"path" yaml:"path"`
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// openStore opens the version store at the --dir flag location.
func openStore(cmd *cli.Command) (*store.Store, error) {
	dir := cmd.String("dir")

	var opts []store.Option
	if cmd.Bool("strict") {
		opts = append(opts, store.WithStrict())
	}

	s, err := store.New(dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open version store at %q: %w", dir, err)
	}
	return s, nil
}

// writeResult serializes data to the --output destination in the --format
// encoding.
func writeResult(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}

func entryFor(s *store.Store, v verpkg.Version) versionEntry {
	return versionEntry{Version: v.String(), Path: s.Path(v)}
}
