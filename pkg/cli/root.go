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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/modelver/modelver/pkg/defaults"
	"github.com/modelver/modelver/pkg/logging"
	"github.com/modelver/modelver/pkg/serializer"
)

const (
	name           = "modelver"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags across commands.
var (
	dirFlag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Value:   defaults.ModelsDir,
		Sources: cli.EnvVars("MODELVER_DIR"),
		Usage:   "Root directory of the model version store",
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail when the store contains entries that are not valid versions",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			serializer.SupportedFormats()),
	}
)

// Root returns the top-level command with all subcommands attached.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Manage semantic versions of model artifact directories",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			initCmd(),
			addCmd(),
			bumpCmd(),
			nextCmd(),
			latestCmd(),
			historyCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
