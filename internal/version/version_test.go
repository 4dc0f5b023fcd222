package version

import (
	"testing"
)

func TestDefaultVersionSet(t *testing.T) {
	if Version == "" {
		t.Fatalf("Version must have a default value")
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	// Simulates build-time -ldflags overrides.
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Fatalf("metadata not overridable: %q %q", GitCommit, BuildDate)
	}
}
