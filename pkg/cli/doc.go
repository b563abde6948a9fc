// Package cli implements the command-line interface for the modelver tool.
//
// # Overview
//
// The modelver CLI manages semantic versions of model artifact directories.
// Each version is a subdirectory of the store named after the version, and
// the directory listing is the version history.
//
// # Commands
//
// init - Seed an empty store:
//
//	modelver init [--dir DIR]
//
// add - Record an explicit version:
//
//	modelver add 1.2.3 [--dir DIR]
//
// bump - Create the next version from the latest:
//
//	modelver bump minor [--dir DIR]
//
// next - Preview a bump without recording it:
//
//	modelver next major [--dir DIR]
//
// latest / history - Inspect the store:
//
//	modelver latest [--format json]
//	modelver history [--output versions.yaml]
//
// # Global Flags
//
//	--dir, -d      Store root directory (default: models, env: MODELVER_DIR)
//	--strict       Fail on store entries that are not valid versions
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	MODELVER_DIR   Store root directory
//	LOG_LEVEL      Logging verbosity (debug, info, warn, error)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/modelver/modelver/pkg/cli.version=1.0.0'"
package cli
