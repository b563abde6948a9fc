package api

import "testing"

// Serve() is a blocking entry point over pkg/server; its behavior is
// covered by the pkg/server handler tests. These tests verify the package
// identity and build variables.

func TestConstants(t *testing.T) {
	if name != "modelverd" {
		t.Errorf("name = %q, want %q", name, "modelverd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}
