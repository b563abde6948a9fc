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

	"github.com/modelver/modelver/pkg/defaults"
	verpkg "github.com/modelver/modelver/pkg/version"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:                  "init",
		EnableShellCompletion: true,
		Usage:                 "Seed an empty store with the initial development version",
		Description: fmt.Sprintf(`Create the store directory if needed and record the initial
development version (%s) as its first entry.

Fails if the store already holds that version.`, defaults.InitialVersion),
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			v, err := s.Init()
			if err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}

			slog.Info("store initialized", "dir", s.Root(), "version", v.String())
			return writeResult(ctx, cmd, entryFor(s, v))
		},
	}
}

func addCmd() *cli.Command {
	return &cli.Command{
		Name:                  "add",
		EnableShellCompletion: true,
		Usage:                 "Record an explicit version in the store",
		ArgsUsage:             "VERSION",
		Description: `Record the given semantic version (e.g. 1.2.3, 2.0.0-rc.1) and
create its directory. Any version not already recorded is accepted,
including versions older than the current latest.`,
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().First()
			if raw == "" {
				return fmt.Errorf("version argument is required (e.g. %s add 1.2.3)", name)
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			v, err := s.AddString(raw)
			if err != nil {
				return fmt.Errorf("failed to add version %q: %w", raw, err)
			}

			return writeResult(ctx, cmd, entryFor(s, v))
		},
	}
}

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Create the next version from the latest",
		ArgsUsage:             "[major|minor|patch]",
		Description: `Bump the latest version by the given kind (default: patch) and
record the result. Prerelease and build metadata are cleared by the bump.`,
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind, err := bumpKindFromArgs(cmd)
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			v, err := s.Create(kind)
			if err != nil {
				return fmt.Errorf("failed to bump %s version: %w", kind, err)
			}

			return writeResult(ctx, cmd, entryFor(s, v))
		},
	}
}

func nextCmd() *cli.Command {
	return &cli.Command{
		Name:                  "next",
		EnableShellCompletion: true,
		Usage:                 "Show the version a bump would produce, without recording it",
		ArgsUsage:             "[major|minor|patch]",
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind, err := bumpKindFromArgs(cmd)
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			v, err := s.Next(kind)
			if err != nil {
				return fmt.Errorf("failed to compute next %s version: %w", kind, err)
			}

			return writeResult(ctx, cmd, entryFor(s, v))
		},
	}
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Show the newest version in the store",
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			v, err := s.Latest()
			if err != nil {
				return fmt.Errorf("failed to read latest version: %w", err)
			}

			return writeResult(ctx, cmd, entryFor(s, v))
		},
	}
}

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "history",
		EnableShellCompletion: true,
		Usage:                 "List all versions in the store, oldest first",
		Flags: []cli.Flag{
			dirFlag,
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}

			history, err := s.History()
			if err != nil {
				return fmt.Errorf("failed to read version history: %w", err)
			}

			entries := make([]versionEntry, 0, len(history))
			for _, v := range history {
				entries = append(entries, entryFor(s, v))
			}

			return writeResult(ctx, cmd, entries)
		},
	}
}

// bumpKindFromArgs parses the optional bump kind argument, defaulting to
// patch.
func bumpKindFromArgs(cmd *cli.Command) (verpkg.Kind, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return verpkg.KindPatch, nil
	}
	return verpkg.ParseKind(raw)
}
